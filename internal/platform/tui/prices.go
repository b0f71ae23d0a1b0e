package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slayer-carry/internal/breakdown"
	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

// newPriceTable builds the price list of every tier in the catalog.
func newPriceTable(catalog *slayer.Catalog, height int) table.Model {
	columns := []table.Column{
		{Title: "Slayer", Width: 22},
		{Title: "Tier", Width: 5},
		{Title: "XP", Width: 7},
		{Title: "Price", Width: 10},
		{Title: "Coins/XP", Width: 10},
	}

	// Leave room for the title, banner, tabs and help
	tableHeight := height - 12
	if tableHeight < 5 {
		tableHeight = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(priceRows(catalog)),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// priceRows lists one row per tier, slayer types in catalog order.
func priceRows(catalog *slayer.Catalog) []table.Row {
	var rows []table.Row
	for _, info := range catalog.List() {
		st, err := catalog.Lookup(info.ID)
		if err != nil {
			continue
		}
		for _, tier := range st.Tiers {
			price, ratio := "not sold", "-"
			if tier.Purchasable() {
				price = breakdown.DisplayMagnitude(tier.Price)
				ratio = breakdown.Commas(tier.Price / tier.XP)
			}
			rows = append(rows, table.Row{
				st.Name,
				tier.Label(),
				breakdown.Commas(tier.XP),
				price,
				ratio,
			})
		}
	}
	return rows
}

// renderAbout describes the service and shows the level curves.
func renderAbout(catalog *slayer.Catalog) string {
	var b strings.Builder

	b.WriteString("Carries are sold per run. Each run of a tier grants a fixed amount of\n")
	b.WriteString("slayer XP; the calculator picks the cheapest mix of runs that reaches\n")
	b.WriteString("your target level, allowing the last run to overshoot.\n\n")

	for _, info := range catalog.List() {
		st, err := catalog.Lookup(info.ID)
		if err != nil {
			continue
		}
		b.WriteString(titleStyle.Render(st.Name))
		b.WriteString("\n")
		for level, xp := range st.Levels.Thresholds() {
			if level == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("  Level %-2d %12s xp\n", level, breakdown.Commas(xp)))
		}
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
