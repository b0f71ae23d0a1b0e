// Package breakdown turns a carry plan into a priced, human-readable summary.
package breakdown

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/slayer-carry/internal/carry"
)

// Line is the cost of the runs bought at one tier.
type Line struct {
	Tier     int // Tier number
	Count    int // Runs bought
	XP       int // XP gained from these runs
	Subtotal int // Count * price per run
}

// Summary is the priced view of a plan.
type Summary struct {
	TotalCost int
	TotalXP   int
	Lines     []Line // Ascending tier order
}

// Format prices a plan. Lines follow ascending tier number; tiers with no
// runs are left out.
func Format(plan carry.Plan) Summary {
	s := Summary{Lines: make([]Line, 0, len(plan.Purchases))}

	for _, pu := range plan.Purchases {
		if pu.Count <= 0 {
			continue
		}
		line := Line{
			Tier:     pu.Tier.Number,
			Count:    pu.Count,
			XP:       pu.XP(),
			Subtotal: pu.Cost(),
		}
		s.Lines = append(s.Lines, line)
		s.TotalCost += line.Subtotal
		s.TotalXP += line.XP
	}

	// Purchases are already sorted, but a hand-built plan may not be.
	sortLines(s.Lines)
	return s
}

// String renders the breakdown as "T3: 1x (800.00K) + T4: 1x (1.50M)".
func (s Summary) String() string {
	if len(s.Lines) == 0 {
		return "nothing to buy"
	}

	parts := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		parts[i] = fmt.Sprintf("T%d: %dx (%s)", l.Tier, l.Count, DisplayMagnitude(l.Subtotal))
	}
	return strings.Join(parts, " + ")
}

// sortLines orders lines by tier number with an insertion sort; there are
// at most a handful of tiers.
func sortLines(lines []Line) {
	for i := 1; i < len(lines); i++ {
		for j := i; j > 0 && lines[j].Tier < lines[j-1].Tier; j-- {
			lines[j], lines[j-1] = lines[j-1], lines[j]
		}
	}
}
