package slayer

import "fmt"

// LevelTable maps a slayer level to the cumulative XP needed to reach it.
// Thresholds start at 0 and are strictly increasing.
type LevelTable struct {
	thresholds []int
}

// DefaultThresholds is the cumulative XP curve shared by every slayer type
// in the reference data (levels 0-9).
var DefaultThresholds = []int{0, 5, 30, 155, 780, 3905, 19530, 97655, 488280, 2441405}

// NewLevelTable validates thresholds and builds a table from a copy of them.
func NewLevelTable(thresholds []int) (LevelTable, error) {
	if len(thresholds) == 0 {
		return LevelTable{}, fmt.Errorf("slayer: level table is empty")
	}
	if thresholds[0] != 0 {
		return LevelTable{}, fmt.Errorf("slayer: level 0 must require 0 xp, got %d", thresholds[0])
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return LevelTable{}, fmt.Errorf("slayer: level %d xp %d is not above level %d xp %d",
				i, thresholds[i], i-1, thresholds[i-1])
		}
	}

	t := make([]int, len(thresholds))
	copy(t, thresholds)
	return LevelTable{thresholds: t}, nil
}

// DefaultLevelTable returns the table built from DefaultThresholds.
func DefaultLevelTable() LevelTable {
	t, err := NewLevelTable(DefaultThresholds)
	if err != nil {
		panic(err)
	}
	return t
}

// MaxLevel returns the highest level in the table.
func (t LevelTable) MaxLevel() int {
	return len(t.thresholds) - 1
}

// Thresholds returns a copy of the cumulative XP values, indexed by level.
func (t LevelTable) Thresholds() []int {
	out := make([]int, len(t.thresholds))
	copy(out, t.thresholds)
	return out
}

// CumulativeXP returns the total XP required to reach level.
func (t LevelTable) CumulativeXP(level int) (int, error) {
	if level < 0 || level > t.MaxLevel() {
		return 0, fmt.Errorf("level %d not in [0, %d]: %w", level, t.MaxLevel(), ErrOutOfRange)
	}
	return t.thresholds[level], nil
}

// Deficit returns the XP needed to go from current to target.
// Both levels must be in range, and current must be below target.
func (t LevelTable) Deficit(current, target int) (int, error) {
	from, err := t.CumulativeXP(current)
	if err != nil {
		return 0, fmt.Errorf("current %w", err)
	}
	to, err := t.CumulativeXP(target)
	if err != nil {
		return 0, fmt.Errorf("target %w", err)
	}
	if current >= target {
		return 0, fmt.Errorf("current level %d must be below target level %d: %w", current, target, ErrInvalidRange)
	}
	return to - from, nil
}
