package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/officejanitor-io/officejanitor/internal/plan"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

var (
	planFlags   optionFlags
	planAutoAll bool
	planOutFile string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build and validate a removal plan",
	Long: `Builds an ordered removal plan from an inventory snapshot and runs
the preflight safety checks against it. No action is executed.

The plan shows:
  • Products to be uninstalled, in removal order
  • Licensing, task, service, filesystem, and registry cleanup
  • The resolved mode and options every step was derived from`,
	RunE: runPlan,
}

func init() {
	planFlags.register(planCmd.Flags())
	planCmd.Flags().BoolVar(&planAutoAll, "all", false, "Plan removal of every supported Office product")
	planCmd.Flags().StringVarP(&planOutFile, "out", "o", "", "Write the full plan to a file")
}

func runPlan(cmd *cobra.Command, args []string) error {
	inv, err := planFlags.loadInventory()
	if err != nil {
		return err
	}

	opts := planFlags.options()
	opts.AutoAll = planAutoAll

	p := plan.Build(inv, opts)
	if err := safety.PerformPreflightChecks(p); err != nil {
		return fmt.Errorf("plan failed preflight checks: %w", err)
	}

	printPlanOutline(cmd.OutOrStdout(), p)

	if planOutFile != "" {
		f, err := os.Create(planOutFile)
		if err != nil {
			return fmt.Errorf("failed to create plan file: %w", err)
		}
		defer f.Close()
		if err := renderPlan(f, p); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plan written to %s\n", planOutFile)
	}
	return nil
}
