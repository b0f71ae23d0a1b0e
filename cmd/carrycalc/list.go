package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slayer-carry/internal/breakdown"
	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List slayer types and tier prices",
	Long:  `Shows every slayer type in the catalog with the XP and price of each carry tier.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	_, catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	printCatalog(cmd.OutOrStdout(), catalog)
	return nil
}

func printCatalog(w io.Writer, catalog *slayer.Catalog) {
	types := catalog.List()
	if len(types) == 0 {
		fmt.Fprintln(w, "No slayer types configured.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range types {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Fprintln(w, "Slayer types:")
	fmt.Fprintln(w)

	for _, info := range types {
		st, err := catalog.Lookup(info.ID)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, st.ID, st.Name)
		for _, tier := range st.Tiers {
			price := "not sold"
			if tier.Purchasable() {
				price = breakdown.DisplayMagnitude(tier.Price)
			}
			fmt.Fprintf(w, "  %-*s    %-3s %8s xp  %s\n", maxIDLen, "", tier.Label(), breakdown.Commas(tier.XP), price)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'carrycalc calc <id> <current> <target>' to price a carry.")
}
