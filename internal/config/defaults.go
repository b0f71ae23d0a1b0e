package config

import (
	_ "embed"

	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// DefaultCatalogConfig returns the built-in carry catalog.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Levels: append([]int(nil), slayer.DefaultThresholds...),
		Slayers: []SlayerConfig{
			{ID: "revenant", Name: "Revenant Horror", Tiers: referenceTiers(1500)},
			{ID: "tarantula", Name: "Tarantula Broodfather", Tiers: referenceTiers(3500)},
			{ID: "sven", Name: "Sven Packmaster", Tiers: referenceTiers(1500)},
			{ID: "voidgloom", Name: "Voidgloom Seraph", Tiers: referenceTiers(0)},
		},
		Banner: BannerConfig{
			Interval: DefaultQuoteInterval,
			Quotes: []string{
				"Lightning fast carries, zero hassle!",
				"Professional carriers, premium service!",
				"Get your runs done reliably!",
				"Expert team, best prices!",
				"Trusted by the Skyblock community!",
			},
		},
	}
}

// referenceTiers returns T1-T4 with the reference carry prices, plus an
// unsold T5 when t5XP is positive.
func referenceTiers(t5XP int) []TierConfig {
	tiers := []TierConfig{
		{Tier: 1, XP: 5},
		{Tier: 2, XP: 25},
		{Tier: 3, XP: 100, Price: 800000},
		{Tier: 4, XP: 500, Price: 1500000},
	}
	if t5XP > 0 {
		tiers = append(tiers, TierConfig{Tier: 5, XP: t5XP})
	}
	return tiers
}

// DefaultYAML returns the embedded default catalog file.
func DefaultYAML() []byte {
	return defaultCatalogYAML
}
