package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slayer-carry/internal/calc"
	"github.com/vovakirdan/slayer-carry/internal/config"
)

func newTestApp(t *testing.T, quotes ...string) AppModel {
	t.Helper()

	catalog, err := config.DefaultCatalogConfig().Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	return NewAppModel(calc.New(catalog, nil), Options{Quotes: quotes, QuoteInterval: time.Second})
}

func press(t *testing.T, m AppModel, msg tea.KeyMsg) AppModel {
	t.Helper()

	next, _ := m.Update(msg)
	app, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update() returned %T, want AppModel", next)
	}
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPageNavigation(t *testing.T) {
	m := newTestApp(t)
	if m.Page() != PageCalculator {
		t.Fatalf("initial page = %v, want Calculator", m.Page())
	}

	want := []Page{PagePrices, PageAbout, PageCalculator}
	for _, p := range want {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.Page() != p {
			t.Errorf("after tab page = %v, want %v", m.Page(), p)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Page() != PageAbout {
		t.Errorf("after shift+tab page = %v, want About", m.Page())
	}
}

func TestQuoteRotation(t *testing.T) {
	m := newTestApp(t, "first", "second")
	if m.Quote() != "first" {
		t.Fatalf("Quote() = %q, want first", m.Quote())
	}

	next, cmd := m.Update(QuoteMsg(time.Now()))
	m = next.(AppModel)
	if m.Quote() != "second" {
		t.Errorf("Quote() = %q, want second", m.Quote())
	}
	if cmd == nil {
		t.Error("quote tick should be rescheduled")
	}

	next, _ = m.Update(QuoteMsg(time.Now()))
	if q := next.(AppModel).Quote(); q != "first" {
		t.Errorf("Quote() = %q, want wrap to first", q)
	}
}

func TestBannerWithoutQuotes(t *testing.T) {
	b := NewBanner(nil)
	if b.Current() != "" || b.Rotates() {
		t.Errorf("empty banner = %q rotates=%v", b.Current(), b.Rotates())
	}
	if b.Next().Current() != "" {
		t.Error("Next() on empty banner should stay empty")
	}
}

func TestCalculateOnEnter(t *testing.T) {
	m := newTestApp(t)
	m.form = m.form.SetLevels(3, 4)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res == nil {
		t.Fatal("Result() = nil after enter")
	}
	if !res.OK {
		t.Fatalf("result failed: %s %s", res.ErrorKind, res.Message)
	}
	if res.SlayerID != m.form.SlayerID() {
		t.Errorf("SlayerID = %q, want %q", res.SlayerID, m.form.SlayerID())
	}
	if res.XPNeeded != 625 || res.TotalCost != 3000000 {
		t.Errorf("result = %d xp / %d coins, want 625 / 3000000", res.XPNeeded, res.TotalCost)
	}
	if !strings.Contains(m.View(), "3.00M") {
		t.Error("View() should show the total cost")
	}
}

func TestCalculateOnEnterFailure(t *testing.T) {
	m := newTestApp(t)
	m.form = m.form.SetLevels(5, 2)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res == nil || res.OK {
		t.Fatalf("Result() = %+v, want failure", res)
	}
	if res.ErrorKind != "InvalidRangeError" {
		t.Errorf("ErrorKind = %q, want InvalidRangeError", res.ErrorKind)
	}
}

func TestLevelInputAcceptsDigitsOnly(t *testing.T) {
	m := newTestApp(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, runes("4"))
	m = press(t, m, runes("x"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(t, m, runes("2"))

	if got := m.form.current.Value(); got != "42" {
		t.Errorf("current level = %q, want 42", got)
	}
	if got := m.form.target.Value(); got != "" {
		t.Errorf("target level = %q, want empty", got)
	}
}

func TestSlayerSelection(t *testing.T) {
	m := newTestApp(t)
	ids := m.calc.Catalog().List()

	if m.form.SlayerID() != ids[0].ID {
		t.Fatalf("SlayerID() = %q, want %q", m.form.SlayerID(), ids[0].ID)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.form.SlayerID() != ids[1].ID {
		t.Errorf("after right SlayerID() = %q, want %q", m.form.SlayerID(), ids[1].ID)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.form.SlayerID() != ids[len(ids)-1].ID {
		t.Errorf("after wrap SlayerID() = %q, want %q", m.form.SlayerID(), ids[len(ids)-1].ID)
	}
}

func TestQuit(t *testing.T) {
	m := newTestApp(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
	if next.(AppModel).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestPricesPage(t *testing.T) {
	m := newTestApp(t)
	rows := priceRows(m.calc.Catalog())

	var sold, unsold int
	for _, r := range rows {
		if r[3] == "not sold" {
			unsold++
		} else {
			sold++
		}
	}
	// T3 and T4 are priced for all four slayer types
	if sold != 8 {
		t.Errorf("priced rows = %d, want 8", sold)
	}
	if unsold == 0 {
		t.Error("unpriced tiers should still be listed")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "1.50M") {
		t.Error("prices page should show the T4 price")
	}
}
