package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/tallybot/internal/service/extract"
	"github.com/sandevgo/tallybot/internal/service/ui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <text>",
	Short: "Print the amounts found in a message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amounts := extract.Extract(strings.Join(args, " "))
		out := cmd.OutOrStdout()
		if len(amounts) == 0 {
			fmt.Fprintln(out, "no amounts found")
			return nil
		}

		total := printAmounts(out, amounts)
		fmt.Fprintln(out, ui.AmountStyle.Render("total: "+extract.FormatAmount(total)))
		return nil
	},
}

// printAmounts lists each amount and returns their sum. Unparsable amounts are
// reported and left out of the total.
func printAmounts(out io.Writer, amounts []string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		amount, err := extract.ParseAmount(a)
		if err != nil {
			fmt.Fprintf(out, "%s (skipped: %v)\n", a, err)
			continue
		}
		total = total.Add(amount)
		fmt.Fprintln(out, a)
	}
	return total
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
