package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slayer-carry/internal/platform/tui"
)

var flagLogFile string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Start the interactive calculator",
	Long: `Opens the terminal calculator with a price list and level curves.

Controls:
  Tab/Shift+Tab  - Switch page
  Up/Down        - Move between fields
  Left/Right     - Change slayer type
  Enter          - Calculate
  Esc/Ctrl+C     - Quit

The UI owns the terminal, so logs are discarded unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runUI(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	c, cfg, err := newCalculator(logOut)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(c, tui.Options{
		Quotes:        cfg.Banner.Quotes,
		QuoteInterval: cfg.Banner.QuoteInterval(),
		Width:         width,
		Height:        height,
	})
}
