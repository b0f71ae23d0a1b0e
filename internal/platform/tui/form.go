package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slayer-carry/internal/breakdown"
	"github.com/vovakirdan/slayer-carry/internal/calc"
	"github.com/vovakirdan/slayer-carry/internal/slayer"
)

// field is a focusable row of the form.
type field int

const (
	fieldSlayer field = iota
	fieldCurrent
	fieldTarget
	fieldCount
)

// Form is the calculator input form and its last result.
type Form struct {
	slayers   []slayer.Info
	slayerIdx int
	current   textinput.Model
	target    textinput.Model
	focus     field
	result    *calc.Result
}

// NewForm creates a form listing the catalog's slayer types.
func NewForm(catalog *slayer.Catalog) Form {
	f := Form{
		slayers: catalog.List(),
		current: newLevelInput("0"),
		target:  newLevelInput("9"),
	}
	return f
}

// newLevelInput creates a digits-only level field.
func newLevelInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 3
	ti.Width = 4
	ti.Prompt = ""
	return ti
}

// Init returns the cursor blink command.
func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards non-key messages such as cursor blinks to the inputs.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	var c1, c2 tea.Cmd
	f.current, c1 = f.current.Update(msg)
	f.target, c2 = f.target.Update(msg)
	return f, tea.Batch(c1, c2)
}

// HandleKey processes a key press on the calculator page.
func (f Form) HandleKey(msg tea.KeyMsg, keys KeyMap) (Form, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		cmd := f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return f, cmd

	case key.Matches(msg, keys.Down):
		cmd := f.setFocus((f.focus + 1) % fieldCount)
		return f, cmd
	}

	if f.focus == fieldSlayer {
		switch {
		case key.Matches(msg, keys.Left):
			f.cycleSlayer(-1)
		case key.Matches(msg, keys.Right):
			f.cycleSlayer(1)
		}
		return f, nil
	}

	// Only digits reach the level fields; editing keys pass through.
	if msg.Type == tea.KeySpace || (msg.Type == tea.KeyRunes && !allDigits(msg.Runes)) {
		return f, nil
	}

	var cmd tea.Cmd
	if f.focus == fieldCurrent {
		f.current, cmd = f.current.Update(msg)
	} else {
		f.target, cmd = f.target.Update(msg)
	}
	return f, cmd
}

// Submit runs the calculation for the current form values.
func (f Form) Submit(c *calc.Calculator) Form {
	var res calc.Result

	req, err := calc.ParseRequest(f.SlayerID(), f.current.Value(), f.target.Value())
	if err != nil {
		res = calc.Failure(err)
	} else {
		res = c.Calculate(req)
	}

	f.result = &res
	return f
}

// SlayerID returns the selected slayer type ID.
func (f Form) SlayerID() string {
	if len(f.slayers) == 0 {
		return ""
	}
	return f.slayers[f.slayerIdx].ID
}

// SetLevels fills both level fields.
func (f Form) SetLevels(current, target int) Form {
	f.current.SetValue(strconv.Itoa(current))
	f.target.SetValue(strconv.Itoa(target))
	return f
}

// Refocus focuses the field that had focus before the form was blurred.
func (f *Form) Refocus() tea.Cmd {
	return f.setFocus(f.focus)
}

// Blur removes focus from the text inputs.
func (f Form) Blur() Form {
	f.current.Blur()
	f.target.Blur()
	return f
}

func (f *Form) setFocus(to field) tea.Cmd {
	f.focus = to
	f.current.Blur()
	f.target.Blur()

	switch to {
	case fieldCurrent:
		return f.current.Focus()
	case fieldTarget:
		return f.target.Focus()
	}
	return nil
}

func (f *Form) cycleSlayer(delta int) {
	n := len(f.slayers)
	if n == 0 {
		return
	}
	f.slayerIdx = (f.slayerIdx + delta + n) % n
}

// View renders the form and the last result.
func (f Form) View() string {
	var b strings.Builder

	name := "(no slayer types)"
	if len(f.slayers) > 0 {
		name = f.slayers[f.slayerIdx].Name
	}

	b.WriteString(f.label("Slayer", fieldSlayer))
	b.WriteString(fmt.Sprintf("< %s >\n", name))
	b.WriteString(f.label("Current level", fieldCurrent))
	b.WriteString(f.current.View())
	b.WriteString("\n")
	b.WriteString(f.label("Target level", fieldTarget))
	b.WriteString(f.target.View())
	b.WriteString("\n")

	if f.result != nil {
		b.WriteString("\n")
		b.WriteString(renderResult(*f.result))
	}

	return panelStyle.Render(b.String())
}

func (f Form) label(text string, fl field) string {
	if f.focus == fl {
		return focusedLabelStyle.Render("> " + text)
	}
	return labelStyle.Render("  " + text)
}

// renderResult shows the XP, cost and breakdown lines of a result.
func renderResult(res calc.Result) string {
	if !res.OK {
		return errorStyle.Render(fmt.Sprintf("%s: %s", res.ErrorKind, res.Message))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("XP Needed:  %s\n", valueStyle.Render(breakdown.DisplayMagnitude(res.XPNeeded))))
	b.WriteString(fmt.Sprintf("Total Cost: %s\n", valueStyle.Render(breakdown.DisplayMagnitude(res.TotalCost))))
	b.WriteString(fmt.Sprintf("Breakdown:  %s", res.Summary.String()))
	if over := res.TotalXP - res.XPNeeded; over > 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Overshoot:  %s xp", breakdown.Commas(over))))
	}
	return b.String()
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(runes) > 0
}
