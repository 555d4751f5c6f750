package cli

import (
	"github.com/spf13/cobra"

	"github.com/officejanitor-io/officejanitor/internal/logging"
)

var (
	rootLogLevel string
	rootQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "officejanitor",
	Short: "Remove Microsoft Office installations cleanly",
	Long: `Office Janitor plans and executes complete removal of Microsoft Office.

It builds an ordered removal plan from a detected installation inventory,
validates the plan against irreversible-action guardrails, and only then
hands it to the executor. Legacy OffScrub command lines are accepted and
translated to native directives.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(rootLogLevel, rootQuiet)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rootQuiet, "quiet", false, "Suppress informational output")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(scrubCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(offscrubCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}
