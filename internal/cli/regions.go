package cli

import (
	"fmt"

	"github.com/conner-holden/arn"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the supported region codes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range arn.Regions() {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
	},
}
