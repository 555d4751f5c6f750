package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/officejanitor-io/officejanitor/internal/executor"
	"github.com/officejanitor-io/officejanitor/internal/legacy"
)

var (
	offscrubInventory string
	offscrubDryRun    bool
)

var offscrubCmd = &cobra.Command{
	Use:   "offscrub SCRIPT [ARGS...]",
	Short: "Translate a legacy OffScrub command line",
	Long: `Parses an OffScrub VBS invocation and prints the equivalent native
directives, so existing automation can migrate without changing behavior.

Example:
  officejanitor offscrub OffScrub10.vbs ALL /Quiet /NoReboot /Log C:\Logs`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOffscrub,
}

func init() {
	offscrubCmd.Flags().StringVarP(&offscrubInventory, "inventory", "i", "", "Inventory snapshot to resolve targets against")
	offscrubCmd.Flags().BoolVar(&offscrubDryRun, "dry-run", false, "Translate as a dry run")
}

func runOffscrub(cmd *cobra.Command, args []string) error {
	command := "msi"
	if strings.Contains(strings.ToLower(args[0]), "c2r") {
		command = "c2r"
	}
	inv := legacy.ParseArguments(command, args)
	directives := legacy.DeriveDirectives(inv, offscrubDryRun)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Script: %s (version group %s)\n", inv.ScriptPath, inv.VersionGroup)
	if len(inv.ProductCodes) > 0 {
		fmt.Fprintf(out, "Product codes: %s\n", strings.Join(inv.ProductCodes, ", "))
	}
	if len(inv.ReleaseIDs) > 0 {
		fmt.Fprintf(out, "Release ids: %s\n", strings.Join(inv.ReleaseIDs, ", "))
	}
	if len(inv.Unknown) > 0 {
		fmt.Fprintf(out, "Unknown switches (ignored): %s\n", strings.Join(inv.Unknown, ", "))
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(directives); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	if cleanup := executor.DirectiveCommands(legacy.CleanupOperations(directives)); len(cleanup) > 0 {
		fmt.Fprintln(out, "Implied cleanup commands:")
		for _, c := range cleanup {
			fmt.Fprintf(out, "  %s\n", c.String())
		}
	}

	if offscrubInventory == "" {
		return nil
	}
	snapshot, err := loadInventoryFile(offscrubInventory)
	if err != nil {
		return err
	}
	for _, record := range legacy.SelectMSITargets(inv, snapshot) {
		fmt.Fprintf(out, "MSI target: %s %s\n", record.ProductCode, record.DisplayName)
	}
	for _, record := range legacy.SelectC2RTargets(inv, snapshot) {
		fmt.Fprintf(out, "C2R target: %s\n", strings.Join(record.ReleaseIDs, ";"))
	}
	return nil
}
