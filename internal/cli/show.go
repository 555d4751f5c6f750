package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/officejanitor-io/officejanitor/internal/ir"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

var (
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show PLAN_FILE",
	Short: "Show a previously written plan",
	Long:  `Displays a human-readable view of a plan file written by plan --out.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}

func runShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read plan file: %w", err)
	}

	var p ir.Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to decode plan file: %w", err)
	}

	if showJSON {
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal plan: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if ctx, ok := p.Context(); ok {
		fmt.Printf("Mode: %s  dry-run: %v  force: %v\n",
			ctx.Metadata.String("mode"), ctx.Metadata.Bool("dry_run"), ctx.Metadata.Bool("force"))
	}
	printPlanOutline(cmd.OutOrStdout(), p)

	if err := safety.PerformPreflightChecks(p); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "WARNING: plan no longer passes preflight checks: %v\n", err)
	}
	return nil
}
