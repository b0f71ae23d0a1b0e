// Package carry finds the cheapest set of carry runs that covers an XP deficit.
package carry

import "github.com/vovakirdan/slayer-carry/internal/slayer"

// Purchase is a number of runs bought at one tier.
type Purchase struct {
	Tier  slayer.Tier
	Count int
}

// XP returns the XP gained from these runs.
func (p Purchase) XP() int {
	return p.Tier.XP * p.Count
}

// Cost returns the price of these runs.
func (p Purchase) Cost() int {
	return p.Tier.Price * p.Count
}

// Plan is a multiset of carry purchases. Purchases are ordered by ascending
// tier number and never contain a zero count.
type Plan struct {
	Deficit   int // XP the plan was built to cover
	Purchases []Purchase
	TotalXP   int
	TotalCost int
}

// Count returns the number of runs bought at the given tier, 0 if none.
func (p Plan) Count(tierNumber int) int {
	for _, pu := range p.Purchases {
		if pu.Tier.Number == tierNumber {
			return pu.Count
		}
	}
	return 0
}

// Runs returns the total number of runs in the plan.
func (p Plan) Runs() int {
	n := 0
	for _, pu := range p.Purchases {
		n += pu.Count
	}
	return n
}

// Overshoot returns the XP gained beyond the deficit.
func (p Plan) Overshoot() int {
	return p.TotalXP - p.Deficit
}

func newPlan(deficit int, purchases []Purchase) Plan {
	plan := Plan{Deficit: deficit, Purchases: purchases}
	for _, pu := range purchases {
		plan.TotalXP += pu.XP()
		plan.TotalCost += pu.Cost()
	}
	return plan
}
