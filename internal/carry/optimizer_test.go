package carry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

// voidgloomTiers mirrors the reference price table: only T3 and T4 are sold.
var voidgloomTiers = []slayer.Tier{
	{Number: 1, XP: 5},
	{Number: 2, XP: 25},
	{Number: 3, XP: 100, Price: 800000},
	{Number: 4, XP: 500, Price: 1500000},
}

func TestOptimizeReferenceScenarios(t *testing.T) {
	tests := []struct {
		name    string
		deficit int
		counts  map[int]int
		cost    int
		xp      int
	}{
		{
			name:    "T4 plus T3 beats two T3 and remainder",
			deficit: 600,
			counts:  map[int]int{3: 1, 4: 1},
			cost:    2300000,
			xp:      600,
		},
		{
			name:    "tiny deficit buys one T3",
			deficit: 1,
			counts:  map[int]int{3: 1},
			cost:    800000,
			xp:      100,
		},
		{
			name:    "exact T4",
			deficit: 500,
			counts:  map[int]int{4: 1},
			cost:    1500000,
			xp:      500,
		},
		{
			name:    "one T4 cheaper than two T3",
			deficit: 150,
			counts:  map[int]int{4: 1},
			cost:    1500000,
			xp:      500,
		},
		{
			name:    "T4 cheaper than two T3 at 201",
			deficit: 201,
			counts:  map[int]int{4: 1},
			cost:    1500000,
			xp:      500,
		},
		{
			name:    "level 0 to 9",
			deficit: 2441405,
			counts:  map[int]int{4: 4883},
			cost:    4883 * 1500000,
			xp:      2441500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Optimize(tt.deficit, voidgloomTiers)
			if err != nil {
				t.Fatalf("Optimize(%d) failed: %v", tt.deficit, err)
			}
			for _, tier := range []int{1, 2, 3, 4} {
				if got := plan.Count(tier); got != tt.counts[tier] {
					t.Errorf("Count(T%d) = %d, want %d", tier, got, tt.counts[tier])
				}
			}
			if plan.TotalCost != tt.cost {
				t.Errorf("TotalCost = %d, want %d", plan.TotalCost, tt.cost)
			}
			if plan.TotalXP != tt.xp {
				t.Errorf("TotalXP = %d, want %d", plan.TotalXP, tt.xp)
			}
		})
	}
}

func TestOptimizeErrors(t *testing.T) {
	if _, err := Optimize(0, voidgloomTiers); !errors.Is(err, slayer.ErrInvalidDeficit) {
		t.Errorf("Optimize(0) error = %v, want ErrInvalidDeficit", err)
	}
	if _, err := Optimize(-10, voidgloomTiers); !errors.Is(err, slayer.ErrInvalidDeficit) {
		t.Errorf("Optimize(-10) error = %v, want ErrInvalidDeficit", err)
	}

	unpriced := []slayer.Tier{{Number: 1, XP: 5}, {Number: 2, XP: 25}}
	if _, err := Optimize(100, unpriced); !errors.Is(err, slayer.ErrNoViableTier) {
		t.Errorf("Optimize(unpriced) error = %v, want ErrNoViableTier", err)
	}

	zeroYield := []slayer.Tier{{Number: 1, XP: 0, Price: 100}}
	if _, err := Optimize(100, zeroYield); !errors.Is(err, slayer.ErrNoViableTier) {
		t.Errorf("Optimize(zero yield) error = %v, want ErrNoViableTier", err)
	}

	if _, err := Optimize(100, nil); !errors.Is(err, slayer.ErrNoViableTier) {
		t.Errorf("Optimize(nil) error = %v, want ErrNoViableTier", err)
	}
}

func TestOptimizeNotGreedy(t *testing.T) {
	// The smaller tier is cheaper per XP, so "largest first" overpays.
	tiers := []slayer.Tier{
		{Number: 3, XP: 100, Price: 100},
		{Number: 4, XP: 500, Price: 1000},
	}

	plan, err := Optimize(500, tiers)
	if err != nil {
		t.Fatalf("Optimize() failed: %v", err)
	}
	if plan.Count(3) != 5 || plan.Count(4) != 0 {
		t.Errorf("plan = %+v, want 5x T3", plan.Purchases)
	}
	if plan.TotalCost != 500 {
		t.Errorf("TotalCost = %d, want 500", plan.TotalCost)
	}
}

func TestOptimizeUnorderedYields(t *testing.T) {
	// Yields decrease with tier number and are listed out of order.
	tiers := []slayer.Tier{
		{Number: 2, XP: 6, Price: 5},
		{Number: 1, XP: 10, Price: 10},
	}

	plan, err := Optimize(12, tiers)
	if err != nil {
		t.Fatalf("Optimize() failed: %v", err)
	}
	if plan.Count(2) != 2 || plan.Count(1) != 0 {
		t.Errorf("plan = %+v, want 2x T2", plan.Purchases)
	}
	if plan.TotalCost != 10 || plan.TotalXP != 12 {
		t.Errorf("TotalCost = %d, TotalXP = %d, want 10 and 12", plan.TotalCost, plan.TotalXP)
	}
	if plan.Purchases[0].Tier.Number != 2 {
		t.Errorf("first purchase is T%d, want T2", plan.Purchases[0].Tier.Number)
	}
}

func TestOptimizePrefersFewerRuns(t *testing.T) {
	tiers := []slayer.Tier{
		{Number: 1, XP: 50, Price: 100},
		{Number: 2, XP: 100, Price: 200},
	}

	plan, err := Optimize(100, tiers)
	if err != nil {
		t.Fatalf("Optimize() failed: %v", err)
	}
	if plan.Runs() != 1 || plan.Count(2) != 1 {
		t.Errorf("plan = %+v, want a single T2 run", plan.Purchases)
	}
}

func TestOptimizePrefersLowerTierOnFullTie(t *testing.T) {
	tiers := []slayer.Tier{
		{Number: 2, XP: 100, Price: 5},
		{Number: 1, XP: 100, Price: 5},
	}

	plan, err := Optimize(100, tiers)
	if err != nil {
		t.Fatalf("Optimize() failed: %v", err)
	}
	if plan.Count(1) != 1 || plan.Count(2) != 0 {
		t.Errorf("plan = %+v, want T1", plan.Purchases)
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	for _, deficit := range []int{1, 99, 600, 3905, 97655} {
		a, err := Optimize(deficit, voidgloomTiers)
		if err != nil {
			t.Fatalf("Optimize(%d) failed: %v", deficit, err)
		}
		b, err := Optimize(deficit, voidgloomTiers)
		if err != nil {
			t.Fatalf("Optimize(%d) failed: %v", deficit, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Optimize(%d) not deterministic: %+v vs %+v", deficit, a, b)
		}
	}
}

func TestOptimizeMatchesBruteForce(t *testing.T) {
	tierSets := map[string][]slayer.Tier{
		"reference": voidgloomTiers,
		"all priced": {
			{Number: 1, XP: 5, Price: 60000},
			{Number: 2, XP: 25, Price: 250000},
			{Number: 3, XP: 100, Price: 800000},
			{Number: 4, XP: 500, Price: 1500000},
		},
		"coprime yields": {
			{Number: 1, XP: 3, Price: 7},
			{Number: 2, XP: 7, Price: 15},
			{Number: 3, XP: 11, Price: 22},
		},
		"unordered": {
			{Number: 3, XP: 4, Price: 9},
			{Number: 1, XP: 9, Price: 17},
			{Number: 2, XP: 2, Price: 5},
		},
	}

	for name, tiers := range tierSets {
		t.Run(name, func(t *testing.T) {
			for deficit := 1; deficit <= 120; deficit++ {
				plan, err := Optimize(deficit, tiers)
				if err != nil {
					t.Fatalf("Optimize(%d) failed: %v", deficit, err)
				}
				if plan.TotalXP < deficit {
					t.Fatalf("Optimize(%d) TotalXP = %d, below deficit", deficit, plan.TotalXP)
				}
				if want := bruteForceCost(deficit, tiers); plan.TotalCost != want {
					t.Fatalf("Optimize(%d) TotalCost = %d, brute force found %d", deficit, plan.TotalCost, want)
				}
				checkPlanTotals(t, plan)
			}
		})
	}
}

func TestOptimizeType(t *testing.T) {
	st := slayer.Type{ID: "voidgloom", Tiers: voidgloomTiers, Levels: slayer.DefaultLevelTable()}

	plan, err := OptimizeType(600, st)
	if err != nil {
		t.Fatalf("OptimizeType() failed: %v", err)
	}
	if plan.TotalCost != 2300000 {
		t.Errorf("TotalCost = %d, want 2300000", plan.TotalCost)
	}

	st.Tiers = nil
	if _, err := OptimizeType(600, st); !errors.Is(err, slayer.ErrNoViableTier) {
		t.Errorf("OptimizeType(no tiers) error = %v, want ErrNoViableTier", err)
	}
}

func TestPlanHelpers(t *testing.T) {
	plan, err := Optimize(600, voidgloomTiers)
	if err != nil {
		t.Fatalf("Optimize() failed: %v", err)
	}
	if plan.Runs() != 2 {
		t.Errorf("Runs() = %d, want 2", plan.Runs())
	}
	if plan.Overshoot() != 0 {
		t.Errorf("Overshoot() = %d, want 0", plan.Overshoot())
	}
	if plan.Deficit != 600 {
		t.Errorf("Deficit = %d, want 600", plan.Deficit)
	}
	for i := 1; i < len(plan.Purchases); i++ {
		if plan.Purchases[i].Tier.Number <= plan.Purchases[i-1].Tier.Number {
			t.Errorf("purchases not in ascending tier order: %+v", plan.Purchases)
		}
	}
}

// checkPlanTotals verifies the derived totals against the purchases.
func checkPlanTotals(t *testing.T, plan Plan) {
	t.Helper()

	xp, cost := 0, 0
	for _, pu := range plan.Purchases {
		if pu.Count <= 0 {
			t.Fatalf("purchase with non-positive count: %+v", pu)
		}
		xp += pu.Tier.XP * pu.Count
		cost += pu.Tier.Price * pu.Count
	}
	if xp != plan.TotalXP || cost != plan.TotalCost {
		t.Fatalf("totals %d xp / %d cost, purchases sum to %d / %d", plan.TotalXP, plan.TotalCost, xp, cost)
	}
}

// bruteForceCost enumerates every combination of purchasable runs that
// covers deficit and returns the lowest cost.
func bruteForceCost(deficit int, tiers []slayer.Tier) int {
	var viable []slayer.Tier
	for _, t := range tiers {
		if t.Purchasable() {
			viable = append(viable, t)
		}
	}

	best := -1
	var walk func(i, xp, cost int)
	walk = func(i, xp, cost int) {
		if best != -1 && cost >= best {
			return
		}
		if xp >= deficit {
			best = cost
			return
		}
		if i == len(viable) {
			return
		}
		t := viable[i]
		maxRuns := (deficit - xp + t.XP - 1) / t.XP
		for n := 0; n <= maxRuns; n++ {
			walk(i+1, xp+n*t.XP, cost+n*t.Price)
		}
	}
	walk(0, 0, 0)
	return best
}
