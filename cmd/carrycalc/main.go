// carrycalc prices the cheapest set of slayer carries that reaches a target level.
//
// Usage:
//
//	carrycalc calc <slayer> <current> <target>  - Price a carry plan
//	carrycalc list                              - List slayer types and tier prices
//	carrycalc levels [slayer]                   - Show the cumulative XP curve
//	carrycalc ui                                - Start the interactive calculator
//
// Global flags:
//
//	--config <path>      - Catalog YAML (default: ~/.carrycalc/catalog.yaml, then built-in)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slayer-carry/internal/calc"
	"github.com/vovakirdan/slayer-carry/internal/config"
	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCalculationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carrycalc",
	Short: "Slayer carry calculator",
	Long: `carrycalc works out the cheapest combination of slayer carry runs
that takes you from your current level to a target level.

Available commands:
  calc     - Price a carry plan
  list     - Show slayer types and tier prices
  levels   - Show the cumulative XP curve
  ui       - Interactive calculator

Examples:
  carrycalc calc voidgloom 3 7
  carrycalc calc sven 0 9 --exact
  carrycalc list
  carrycalc levels tarantula
  carrycalc ui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(uiCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "carrycalc",
		Level:           level,
	}), nil
}

// loadCatalog reads the catalog configuration and builds the catalog.
func loadCatalog() (config.CatalogConfig, *slayer.Catalog, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.CatalogConfig{}, nil, err
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return config.CatalogConfig{}, nil, err
	}
	return cfg, catalog, nil
}

// newCalculator builds a calculator that logs to w.
func newCalculator(w io.Writer) (*calc.Calculator, config.CatalogConfig, error) {
	logger, err := newLogger(w)
	if err != nil {
		return nil, config.CatalogConfig{}, err
	}

	cfg, catalog, err := loadCatalog()
	if err != nil {
		return nil, config.CatalogConfig{}, err
	}

	logger.Debug("catalog loaded", "slayers", catalog.Len(), "config", flagConfig)
	return calc.New(catalog, logger), cfg, nil
}
