package cli

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/officejanitor-io/officejanitor/internal/executor"
	"github.com/officejanitor-io/officejanitor/internal/logging"
	"github.com/officejanitor-io/officejanitor/internal/plan"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

var (
	scrubFlags  optionFlags
	scrubPasses int
)

var scrubCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Remove every detected Office installation",
	Long: `Builds a remove-everything plan, validates it, and executes it.

With --passes greater than one, planning and execution repeat so cleanup
commands get another attempt at artifacts a prior pass could not remove.
Every pass plans from the same inventory snapshot.`,
	RunE: runScrub,
}

func init() {
	scrubFlags.register(scrubCmd.Flags())
	scrubCmd.Flags().IntVar(&scrubPasses, "passes", 1, "Number of plan-and-execute passes")
}

func runScrub(cmd *cobra.Command, args []string) error {
	inv, err := scrubFlags.loadInventory()
	if err != nil {
		return err
	}

	opts := scrubFlags.options()
	opts.AutoAll = true

	log := logging.Component("scrub")
	runner := executor.RunnerFunc(func(ctx context.Context, c executor.Command) error {
		return exec.CommandContext(ctx, c.Name, c.Args...).Run()
	})
	exe := executor.New(runner).WithForce(opts.Force)

	if scrubPasses < 1 {
		scrubPasses = 1
	}
	for pass := 1; pass <= scrubPasses; pass++ {
		p := plan.BuildPass(inv, opts, pass)
		if err := safety.PerformPreflightChecks(p); err != nil {
			return fmt.Errorf("pass %d failed preflight checks: %w", pass, err)
		}
		if err := guardRuntime(cmd.Context(), p, opts); err != nil {
			return fmt.Errorf("pass %d: %w", pass, err)
		}
		log.Info("executing scrub pass", "pass", pass, "steps", len(p.Steps))
		results, err := exe.Execute(cmd.Context(), p)
		if err != nil {
			return fmt.Errorf("pass %d failed: %w", pass, err)
		}
		executed := 0
		for _, r := range results {
			if !r.Skipped {
				executed++
			}
		}
		log.Info("scrub pass finished", "pass", pass, "executed", executed, "skipped", len(results)-executed)
	}
	return nil
}
