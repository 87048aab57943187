package cli

import (
	"fmt"

	"github.com/conner-holden/arn"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <arn>...",
	Short: "Match ARNs against a wildcard pattern",
	Long: `Parses the first argument as a pattern, where "*" in any field
matches every value of that field, and prints the ARNs that match.
Exits non-zero when nothing matches.

Example:
  arnctl match 'arn:aws:s3:*:*:*' arn:aws:s3:us-east-1:123456789012:bucket`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern, err := arn.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse pattern %q: %w", args[0], err)
	}

	matched := 0
	for _, input := range args[1:] {
		candidate, err := arn.Parse(input)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", input, err)
		}
		if pattern.Matches(candidate) {
			matched++
			fmt.Fprintln(cmd.OutOrStdout(), input)
		}
	}

	if matched == 0 {
		return fmt.Errorf("no inputs matched %q", args[0])
	}
	return nil
}
