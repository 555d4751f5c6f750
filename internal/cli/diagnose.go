package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officejanitor-io/officejanitor/internal/plan"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

var diagnoseFlags optionFlags

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Report detected Office installations without planning any removal",
	RunE:  runDiagnose,
}

func init() {
	diagnoseFlags.register(diagnoseCmd.Flags())
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	inv, err := diagnoseFlags.loadInventory()
	if err != nil {
		return err
	}

	opts := diagnoseFlags.options()
	opts.Diagnose = true

	p := plan.Build(inv, opts)
	if err := safety.PerformPreflightChecks(p); err != nil {
		return err
	}

	ctx, _ := p.Context()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode: %s\n", ctx.Metadata.String("mode"))
	if versions := ctx.Metadata.Strings("discovered_versions"); len(versions) > 0 {
		fmt.Fprintln(out, "Discovered Office versions:")
		for _, v := range versions {
			fmt.Fprintf(out, "  - %s\n", v)
		}
	} else {
		fmt.Fprintln(out, "No Office installations detected.")
	}
	if counts, ok := ctx.Metadata["inventory_counts"].(map[string]int); ok {
		for _, category := range []string{"msi", "c2r", "filesystem", "registry", "tasks", "services"} {
			if counts[category] > 0 {
				fmt.Fprintf(out, "  %s entries: %d\n", category, counts[category])
			}
		}
	}
	return nil
}
