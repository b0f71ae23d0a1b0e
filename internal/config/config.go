// Package config provides YAML-based loading of the carry catalog: slayer
// tiers, carry prices, level curves and the banner quotes shown by the UI.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

// DefaultQuoteInterval is how long each banner quote stays on screen.
const DefaultQuoteInterval = 5 * time.Second

// CatalogConfig contains the whole carry catalog.
type CatalogConfig struct {
	Levels  []int          `yaml:"levels"` // Shared cumulative XP curve
	Slayers []SlayerConfig `yaml:"slayers"`
	Banner  BannerConfig   `yaml:"banner"`
}

// SlayerConfig defines one slayer type.
type SlayerConfig struct {
	ID     string       `yaml:"id"`
	Name   string       `yaml:"name"`
	Levels []int        `yaml:"levels,omitempty"` // Overrides the shared curve
	Tiers  []TierConfig `yaml:"tiers"`
}

// TierConfig defines one carry tier of a slayer type.
type TierConfig struct {
	Tier  int `yaml:"tier"`
	XP    int `yaml:"xp"`
	Price int `yaml:"price,omitempty"` // 0 = not sold
}

// BannerConfig defines the rotating quote banner.
type BannerConfig struct {
	Interval time.Duration `yaml:"interval"`
	Quotes   []string      `yaml:"quotes"`
}

// QuoteInterval returns the banner interval, falling back to the default.
func (b BannerConfig) QuoteInterval() time.Duration {
	if b.Interval <= 0 {
		return DefaultQuoteInterval
	}
	return b.Interval
}

// Catalog validates the configuration and builds the slayer catalog from it.
func (c CatalogConfig) Catalog() (*slayer.Catalog, error) {
	if len(c.Slayers) == 0 {
		return nil, fmt.Errorf("config: no slayer types defined")
	}

	shared := c.Levels
	if len(shared) == 0 {
		shared = slayer.DefaultThresholds
	}

	types := make([]slayer.Type, 0, len(c.Slayers))
	for _, sc := range c.Slayers {
		st, err := sc.build(shared)
		if err != nil {
			return nil, err
		}
		types = append(types, st)
	}

	catalog, err := slayer.NewCatalog(types...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return catalog, nil
}

// build converts a slayer entry, using shared when it has no own curve.
func (sc SlayerConfig) build(shared []int) (slayer.Type, error) {
	thresholds := sc.Levels
	if len(thresholds) == 0 {
		thresholds = shared
	}
	levels, err := slayer.NewLevelTable(thresholds)
	if err != nil {
		return slayer.Type{}, fmt.Errorf("config: slayer %q: %w", sc.ID, err)
	}

	tiers := make([]slayer.Tier, 0, len(sc.Tiers))
	for _, tc := range sc.Tiers {
		if tc.Tier <= 0 {
			return slayer.Type{}, fmt.Errorf("config: slayer %q: tier number %d must be positive", sc.ID, tc.Tier)
		}
		if tc.XP < 0 || tc.Price < 0 {
			return slayer.Type{}, fmt.Errorf("config: slayer %q: tier %d has negative xp or price", sc.ID, tc.Tier)
		}
		tiers = append(tiers, slayer.Tier{Number: tc.Tier, XP: tc.XP, Price: tc.Price})
	}

	return slayer.Type{
		ID:     sc.ID,
		Name:   sc.Name,
		Tiers:  tiers,
		Levels: levels,
	}, nil
}
