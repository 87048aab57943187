package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/conner-holden/arn"
	"github.com/conner-holden/arn/internal/logging"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [<arn>...]",
	Short: "Check whether ARNs are well formed",
	Long: `Validates each argument, or each line of stdin when no arguments
are given. Prints OK or FAILED per input and exits non-zero if any
input fails.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		stdin, err := readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		inputs = stdin
	}

	failed := 0
	for _, input := range inputs {
		if _, err := arn.Parse(input); err != nil {
			failed++
			logging.Debug("validation failed", "input", input, "error", err)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED (%v)\n", input, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", input)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs invalid", failed, len(inputs))
	}
	return nil
}

// readLines collects non-empty lines from r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
