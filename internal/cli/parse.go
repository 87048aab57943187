package cli

import (
	"encoding/json"
	"fmt"

	"github.com/conner-holden/arn"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <arn>...",
	Short: "Parse ARNs and print their components",
	Long: `Parses each argument and prints its service, region, account,
and resource ID. Use --json for one JSON object per input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output in JSON format")
}

// field is any ARN component payload the CLI can display.
type field interface {
	comparable
	fmt.Stringer
}

// fieldText renders a component for display: "*" for the wildcard, the
// empty string for an absent field.
func fieldText[V field](c arn.Component[V]) string {
	if c.IsAny() {
		return "*"
	}
	v, ok := c.Get()
	if !ok {
		return ""
	}
	return v.String()
}

// fieldJSON renders a component for JSON output; absent fields become null.
func fieldJSON[V field](c arn.Component[V]) *string {
	if c.IsNone() {
		return nil
	}
	s := fieldText(c)
	return &s
}

type parsedARN struct {
	Input      string  `json:"input"`
	Service    *string `json:"service"`
	Region     *string `json:"region"`
	Account    *string `json:"account"`
	ResourceID *string `json:"resourceId"`
}

func runParse(cmd *cobra.Command, args []string) error {
	for _, input := range args {
		a, err := arn.Parse(input)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", input, err)
		}

		if parseJSON {
			data, err := json.Marshal(parsedARN{
				Input:      input,
				Service:    fieldJSON(a.Service),
				Region:     fieldJSON(a.Region),
				Account:    fieldJSON(a.Account),
				ResourceID: fieldJSON(a.ResourceID),
			})
			if err != nil {
				return fmt.Errorf("failed to encode %q: %w", input, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", input)
		fmt.Fprintf(cmd.OutOrStdout(), "  service:     %s\n", fieldText(a.Service))
		fmt.Fprintf(cmd.OutOrStdout(), "  region:      %s\n", fieldText(a.Region))
		fmt.Fprintf(cmd.OutOrStdout(), "  account:     %s\n", fieldText(a.Account))
		fmt.Fprintf(cmd.OutOrStdout(), "  resource id: %s\n", fieldText(a.ResourceID))
	}
	return nil
}
