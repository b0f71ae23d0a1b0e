package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slayer-carry/internal/calc"
)

// Page is one of the app's top-level screens.
type Page int

const (
	PageCalculator Page = iota
	PagePrices
	PageAbout
)

var pageTitles = []string{"Calculator", "Prices", "About"}

// String returns the page title.
func (p Page) String() string {
	if p < 0 || int(p) >= len(pageTitles) {
		return "Unknown"
	}
	return pageTitles[p]
}

// Options configures the app.
type Options struct {
	Quotes        []string
	QuoteInterval time.Duration
	Width         int
	Height        int
}

// AppModel is the Bubble Tea model for the carry calculator.
// Page, banner and form state live here for the lifetime of one program run.
type AppModel struct {
	calc     *calc.Calculator
	form     Form
	prices   table.Model
	banner   Banner
	interval time.Duration
	page     Page
	help     help.Model
	keys     KeyMap
	width    int
	height   int
	quitting bool
}

// NewAppModel creates the app model.
func NewAppModel(c *calc.Calculator, opts Options) AppModel {
	if opts.QuoteInterval <= 0 {
		opts.QuoteInterval = 5 * time.Second
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return AppModel{
		calc:     c,
		form:     NewForm(c.Catalog()),
		prices:   newPriceTable(c.Catalog(), opts.Height),
		banner:   NewBanner(opts.Quotes),
		interval: opts.QuoteInterval,
		page:     PageCalculator,
		help:     h,
		keys:     DefaultKeyMap(),
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Init starts the quote rotation and the input cursor.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.form.Init()}
	if m.banner.Rotates() {
		cmds = append(cmds, quoteTickCmd(m.interval))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prices = newPriceTable(m.calc.Catalog(), msg.Height)
		return m, nil

	case QuoteMsg:
		m.banner = m.banner.Next()
		return m, quoteTickCmd(m.interval)
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPage):
		return m.navigateTo(Page((int(m.page) + 1) % len(pageTitles)))

	case key.Matches(msg, m.keys.PrevPage):
		return m.navigateTo(Page((int(m.page) + len(pageTitles) - 1) % len(pageTitles)))
	}

	var cmd tea.Cmd
	switch m.page {
	case PageCalculator:
		if key.Matches(msg, m.keys.Calculate) {
			m.form = m.form.Submit(m.calc)
			return m, nil
		}
		m.form, cmd = m.form.HandleKey(msg, m.keys)
	case PagePrices:
		m.prices, cmd = m.prices.Update(msg)
	}
	return m, cmd
}

// navigateTo switches the active page.
func (m AppModel) navigateTo(p Page) (tea.Model, tea.Cmd) {
	m.page = p
	if p == PageCalculator {
		cmd := m.form.Refocus()
		return m, cmd
	}
	m.form = m.form.Blur()
	return m, nil
}

// View renders the active page.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S L A Y E R   C A R R I E S"), m.width))
	b.WriteString("\n")
	if q := m.banner.Current(); q != "" {
		b.WriteString(centerText(quoteStyle.Render(q), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(renderTabs(pageTitles, int(m.page)), m.width))
	b.WriteString("\n\n")

	switch m.page {
	case PageCalculator:
		b.WriteString(m.form.View())
	case PagePrices:
		b.WriteString(panelStyle.Render(m.prices.View()))
	case PageAbout:
		b.WriteString(renderAbout(m.calc.Catalog()))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Page returns the active page.
func (m AppModel) Page() Page {
	return m.page
}

// Quote returns the banner quote on display.
func (m AppModel) Quote() string {
	return m.banner.Current()
}

// Result returns the last calculation result, or nil before the first one.
func (m AppModel) Result() *calc.Result {
	return m.form.result
}

// Run starts the Bubble Tea program for the calculator.
func Run(c *calc.Calculator, opts Options) error {
	model := NewAppModel(c, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
