package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slayer-carry/internal/breakdown"
	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [slayer]",
	Short: "Show the cumulative XP curve",
	Long: `Shows the total XP needed to reach each slayer level.

Without an argument the first slayer type's curve is shown.

Examples:
  carrycalc levels
  carrycalc levels voidgloom`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	_, catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	} else if types := catalog.List(); len(types) > 0 {
		id = types[0].ID
	}

	if !catalog.Exists(id) {
		return fmt.Errorf("unknown slayer type %q (run 'carrycalc list' to see them)", id)
	}

	st, err := catalog.Lookup(id)
	if err != nil {
		return err
	}

	printLevels(cmd.OutOrStdout(), st)
	return nil
}

func printLevels(w io.Writer, st slayer.Type) {
	fmt.Fprintf(w, "%s XP curve:\n\n", st.Name)
	fmt.Fprintf(w, "  %-5s  %12s  %12s\n", "Level", "Total XP", "From prev")
	fmt.Fprintf(w, "  %-5s  %12s  %12s\n", "-----", "--------", "---------")

	prev := 0
	for level, xp := range st.Levels.Thresholds() {
		fmt.Fprintf(w, "  %-5d  %12s  %12s\n", level, breakdown.Commas(xp), breakdown.Commas(xp-prev))
		prev = xp
	}
}
