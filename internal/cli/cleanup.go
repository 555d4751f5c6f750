package cli

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/officejanitor-io/officejanitor/internal/executor"
	"github.com/officejanitor-io/officejanitor/internal/plan"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

var cleanupFlags optionFlags

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove leftover Office artifacts without uninstalling products",
	Long: `Runs the residue cleanup portion of a scrub: licensing, scheduled
tasks, services, filesystem leftovers, and registry hives. Product
uninstalls are never scheduled in this mode.`,
	RunE: runCleanup,
}

func init() {
	cleanupFlags.register(cleanupCmd.Flags())
}

func runCleanup(cmd *cobra.Command, args []string) error {
	inv, err := cleanupFlags.loadInventory()
	if err != nil {
		return err
	}

	opts := cleanupFlags.options()
	opts.CleanupOnly = true

	p := plan.Build(inv, opts)
	if err := safety.PerformPreflightChecks(p); err != nil {
		return fmt.Errorf("cleanup plan failed preflight checks: %w", err)
	}
	if err := guardRuntime(cmd.Context(), p, opts); err != nil {
		return err
	}

	runner := executor.RunnerFunc(func(ctx context.Context, c executor.Command) error {
		return exec.CommandContext(ctx, c.Name, c.Args...).Run()
	})
	_, err = executor.New(runner).WithForce(opts.Force).Execute(cmd.Context(), p)
	return err
}
