// Package tui provides the Bubble Tea front end for the carry calculator.
// It owns page navigation, the quote banner and the input form; all pricing
// goes through calc.Calculator.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// QuoteMsg is sent when the banner should show its next quote.
type QuoteMsg time.Time

// quoteTickCmd returns a Bubble Tea command that sends a QuoteMsg after interval.
func quoteTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return QuoteMsg(t)
	})
}
