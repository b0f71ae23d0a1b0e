package carry

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

// unreachable marks an XP total no combination of runs lands on exactly.
const unreachable = -1

// Optimize returns the cheapest plan whose total XP is at least deficit.
//
// Runs of every purchasable tier can be bought in any quantity. The search is
// an unbounded covering knapsack over XP totals from 0 to deficit+maxYield-1:
// a plan that overshoots by a full run of its largest tier can drop that run
// and stay above the deficit for less money, so nothing past that bound can
// be optimal. Yields are divided by their GCD first; every reachable total is
// a multiple of it, so the scaled problem has the same answers.
//
// Equal-cost plans are ranked by fewer runs. Remaining ties go to the
// lower-numbered tier at each step, then to the smaller overshoot.
func Optimize(deficit int, tiers []slayer.Tier) (Plan, error) {
	if deficit <= 0 {
		return Plan{}, fmt.Errorf("carry: deficit %d: %w", deficit, slayer.ErrInvalidDeficit)
	}

	viable := purchasable(tiers)
	if len(viable) == 0 {
		return Plan{}, fmt.Errorf("carry: none of %d tiers can be bought: %w", len(tiers), slayer.ErrNoViableTier)
	}

	step, maxYield := 0, 0
	for _, t := range viable {
		step = gcd(step, t.XP)
		maxYield = max(maxYield, t.XP)
	}

	target := (deficit + step - 1) / step
	limit := target + maxYield/step - 1

	yields := make([]int, len(viable))
	for i, t := range viable {
		yields[i] = t.XP / step
	}

	// cost[x] is the cheapest way to gain exactly x scaled XP, runs[x] the
	// run count of that way, and choice[x] the tier taken last.
	cost := make([]int, limit+1)
	runs := make([]int, limit+1)
	choice := make([]int, limit+1)
	for x := 1; x <= limit; x++ {
		cost[x] = unreachable
		choice[x] = -1
	}

	for x := 1; x <= limit; x++ {
		for i, y := range yields {
			if y > x || cost[x-y] == unreachable {
				continue
			}
			c := cost[x-y] + viable[i].Price
			r := runs[x-y] + 1
			if better(c, r, cost[x], runs[x]) {
				cost[x], runs[x], choice[x] = c, r, i
			}
		}
	}

	best := -1
	for x := target; x <= limit; x++ {
		if cost[x] == unreachable {
			continue
		}
		if best == -1 || better(cost[x], runs[x], cost[best], runs[best]) {
			best = x
		}
	}
	if best == -1 {
		// Unreachable: a multiple of the largest yield always falls in [target, limit].
		return Plan{}, fmt.Errorf("carry: no plan covers %d xp: %w", deficit, slayer.ErrNoViableTier)
	}

	counts := make([]int, len(viable))
	for x := best; x > 0; x -= yields[choice[x]] {
		counts[choice[x]]++
	}

	purchases := make([]Purchase, 0, len(viable))
	for i, n := range counts {
		if n > 0 {
			purchases = append(purchases, Purchase{Tier: viable[i], Count: n})
		}
	}

	return newPlan(deficit, purchases), nil
}

// OptimizeType runs Optimize against the tiers of a slayer type.
func OptimizeType(deficit int, st slayer.Type) (Plan, error) {
	plan, err := Optimize(deficit, st.Tiers)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", st.ID, err)
	}
	return plan, nil
}

// better reports whether (cost, runs) beats the current best.
func better(cost, runs, bestCost, bestRuns int) bool {
	if bestCost == unreachable {
		return true
	}
	if cost != bestCost {
		return cost < bestCost
	}
	return runs < bestRuns
}

// purchasable returns the tiers that can be bought, ordered by tier number.
func purchasable(tiers []slayer.Tier) []slayer.Tier {
	out := make([]slayer.Tier, 0, len(tiers))
	for _, t := range tiers {
		if t.Purchasable() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
