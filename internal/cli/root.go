package cli

import (
	"github.com/conner-holden/arn/internal/logging"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "arnctl",
	Short: "Parse, validate, and match Amazon Resource Names",
	Long: `arnctl works with ARNs of the form

  arn:aws:<service>:<region>:<account>:<resource-id>

Fields are bounded (service 32, account 12, resource ID 64 bytes),
regions are checked against a closed table, and any field may be
empty or the "*" wildcard. The resource ID may contain further
colons, as in Lambda function versions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logLevel)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(versionCmd)
}
