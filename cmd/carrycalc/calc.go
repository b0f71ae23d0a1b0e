package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slayer-carry/internal/breakdown"
	"github.com/vovakirdan/slayer-carry/internal/calc"
)

var flagExact bool

// errCalculationFailed marks a failed result that has already been printed.
var errCalculationFailed = errors.New("calculation failed")

var calcCmd = &cobra.Command{
	Use:   "calc <slayer> <current> <target>",
	Short: "Price the cheapest carry plan",
	Long: `Works out the XP between two slayer levels and the cheapest mix of
carry runs that covers it. The last run may overshoot the target.

Examples:
  carrycalc calc voidgloom 3 7
  carrycalc calc revenant 0 9 --exact`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&flagExact, "exact", false, "Print full numbers instead of K/M")
}

func runCalc(cmd *cobra.Command, args []string) error {
	c, _, err := newCalculator(os.Stderr)
	if err != nil {
		return err
	}

	var res calc.Result
	req, err := calc.ParseRequest(args[0], args[1], args[2])
	if err != nil {
		res = calc.Failure(err)
	} else {
		res = c.Calculate(req)
	}

	printResult(cmd.OutOrStdout(), res, flagExact)
	if !res.OK {
		return errCalculationFailed
	}
	return nil
}

// printResult writes a result in the calculator's report layout.
func printResult(w io.Writer, res calc.Result, exact bool) {
	if !res.OK {
		fmt.Fprintf(w, "Error (%s): %s\n", res.ErrorKind, res.Message)
		return
	}

	num := breakdown.DisplayMagnitude
	if exact {
		num = breakdown.Commas
	}

	fmt.Fprintf(w, "%s\n\n", res.SlayerName)
	fmt.Fprintf(w, "  XP Needed:   %s\n", num(res.XPNeeded))
	fmt.Fprintf(w, "  Total Cost:  %s\n", num(res.TotalCost))

	parts := make([]string, 0, len(res.Breakdown))
	for _, l := range res.Breakdown {
		parts = append(parts, fmt.Sprintf("T%d: %dx (%s)", l.Tier, l.Count, num(l.Subtotal)))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to buy")
	}
	fmt.Fprintf(w, "  Breakdown:   %s\n", strings.Join(parts, " + "))

	if over := res.TotalXP - res.XPNeeded; over > 0 {
		fmt.Fprintf(w, "  Overshoot:   %s xp\n", breakdown.Commas(over))
	}
}
