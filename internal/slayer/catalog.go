// Package slayer holds the slayer domain model: carry tiers, level curves,
// and the catalog of slayer types a calculation can be run against.
//
// Everything in this package is immutable once built. A Catalog is created
// once at startup from configuration and shared read-only afterwards.
package slayer

import (
	"fmt"
	"sort"
	"strings"
)

// Tier is one carry difficulty for a slayer type.
type Tier struct {
	Number int // Tier number, e.g. 4 for T4
	XP     int // Slayer XP granted per run
	Price  int // Coins per run; 0 means the tier is not offered
}

// Purchasable reports whether runs of this tier can be bought for XP.
func (t Tier) Purchasable() bool {
	return t.XP > 0 && t.Price > 0
}

// Label returns the short display name, e.g. "T4".
func (t Tier) Label() string {
	return fmt.Sprintf("T%d", t.Number)
}

// Type is a slayer boss category with its own tiers and level curve.
type Type struct {
	ID     string
	Name   string
	Tiers  []Tier
	Levels LevelTable
}

// Tier returns the tier with the given number.
func (s Type) Tier(number int) (Tier, bool) {
	for _, t := range s.Tiers {
		if t.Number == number {
			return t, true
		}
	}
	return Tier{}, false
}

// Info contains display metadata about a catalog entry.
type Info struct {
	ID   string
	Name string
}

// Catalog is an immutable lookup of slayer types by ID.
type Catalog struct {
	types map[string]Type
}

// NewCatalog builds a catalog. IDs are matched case-insensitively and must be unique.
// Tiers are stored in ascending tier-number order.
func NewCatalog(types ...Type) (*Catalog, error) {
	c := &Catalog{types: make(map[string]Type, len(types))}

	for _, st := range types {
		id := normalizeID(st.ID)
		if id == "" {
			return nil, fmt.Errorf("slayer: type %q has an empty id", st.Name)
		}
		if _, exists := c.types[id]; exists {
			return nil, fmt.Errorf("slayer: type %q already registered", id)
		}
		if st.Levels.MaxLevel() < 1 {
			return nil, fmt.Errorf("slayer: type %q needs at least two levels", id)
		}

		tiers := make([]Tier, len(st.Tiers))
		copy(tiers, st.Tiers)
		sort.SliceStable(tiers, func(i, j int) bool {
			return tiers[i].Number < tiers[j].Number
		})
		for i := 1; i < len(tiers); i++ {
			if tiers[i].Number == tiers[i-1].Number {
				return nil, fmt.Errorf("slayer: type %q lists tier %d twice", id, tiers[i].Number)
			}
		}

		st.ID = id
		st.Tiers = tiers
		if st.Name == "" {
			st.Name = id
		}
		c.types[id] = st
	}

	return c, nil
}

// Lookup returns the slayer type with the given ID.
func (c *Catalog) Lookup(id string) (Type, error) {
	st, ok := c.types[normalizeID(id)]
	if !ok {
		return Type{}, fmt.Errorf("slayer: %q: %w", id, ErrUnknownSlayerType)
	}
	st.Tiers = append([]Tier(nil), st.Tiers...)
	return st, nil
}

// Exists checks if a slayer type with the given ID is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.types[normalizeID(id)]
	return ok
}

// List returns information about all slayer types, sorted by ID.
func (c *Catalog) List() []Info {
	result := make([]Info, 0, len(c.types))
	for id, st := range c.types {
		result = append(result, Info{ID: id, Name: st.Name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Len returns the number of slayer types.
func (c *Catalog) Len() int {
	return len(c.types)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
