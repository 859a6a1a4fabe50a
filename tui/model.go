// Package tui draws a calculator widget in the terminal with bubbletea.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"loan-calculator/domain"
	"loan-calculator/widget"
)

const (
	sliderWidth = 30
	splitWidth  = 40
)

type model struct {
	theme  Theme
	widget *widget.Widget
	view   widget.View
	focus  int
	err    error
}

func Run(w *widget.Widget) error {
	p := tea.NewProgram(newModel(w), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(w *widget.Widget) model {
	return model{
		theme:  DefaultTheme(),
		widget: w,
		view:   w.Render(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.focus = (m.focus + len(m.view.Controls) - 1) % len(m.view.Controls)
	case "down", "j", "tab":
		m.focus = (m.focus + 1) % len(m.view.Controls)
	case "left", "h":
		return m.nudge(-1), nil
	case "right", "l":
		return m.nudge(1), nil
	}
	return m, nil
}

// nudge moves the focused control one step, or one option for a select.
func (m model) nudge(dir int) model {
	ctl := m.view.Controls[m.focus]

	value, ok := nextValue(ctl, dir)
	if !ok {
		return m
	}

	view, err := m.widget.Apply(domain.Edit{Field: ctl.Field, Value: value})
	if err != nil {
		m.err = err
		return m
	}
	m.view = view
	m.err = nil
	return m
}

func nextValue(ctl widget.Control, dir int) (float64, bool) {
	if ctl.Kind == widget.KindSelect {
		for i, o := range ctl.Options {
			if float64(o.Value) != ctl.Value {
				continue
			}
			j := i + dir
			if j < 0 || j >= len(ctl.Options) {
				return 0, false
			}
			return float64(ctl.Options[j].Value), true
		}
		return 0, false
	}

	next := ctl.Value + float64(dir)*ctl.Step
	if next < ctl.Min || next > ctl.Max {
		return 0, false
	}
	return next, true
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.view.Title))
	b.WriteString("\n\n")

	for i, ctl := range m.view.Controls {
		style, cursor := m.theme.Label, "  "
		if i == m.focus {
			style, cursor = m.theme.Focused, "> "
		}
		b.WriteString(cursor + style.Render(ctl.Label) + "\n")
		b.WriteString("  " + renderControl(ctl) + "\n")
	}

	b.WriteString("\n")
	for _, r := range m.view.Readouts {
		b.WriteString(fmt.Sprintf("%s: %s\n", r.Label, m.theme.Title.Render(r.Text)))
	}

	b.WriteString("\n" + m.renderSplit() + "\n")

	if m.err != nil {
		b.WriteString("\n" + m.theme.Error.Render(m.err.Error()) + "\n")
	}

	card := m.theme.Card.Render(b.String())
	help := m.theme.Help.Render("↑/↓ select • ←/→ adjust • q quit")
	return lipgloss.NewStyle().Padding(1, 2).Render(card + "\n" + help)
}

func renderControl(ctl widget.Control) string {
	if ctl.Kind == widget.KindSelect {
		parts := make([]string, len(ctl.Options))
		hint := ""
		for i, o := range ctl.Options {
			if float64(o.Value) == ctl.Value {
				parts[i] = fmt.Sprintf("[%d]", o.Value)
				hint = o.Hint
			} else {
				parts[i] = fmt.Sprintf(" %d ", o.Value)
			}
		}
		out := strings.Join(parts, "")
		if hint != "" {
			out += "  " + hint
		}
		return out
	}

	pos := 0
	if span := ctl.Max - ctl.Min; span > 0 {
		pos = int(math.Round((ctl.Value - ctl.Min) / span * sliderWidth))
	}
	return "[" + strings.Repeat("=", pos) + "o" + strings.Repeat("-", sliderWidth-pos) + "]"
}

// renderSplit draws the chart data as one bar split by share.
func (m model) renderSplit() string {
	labels, values := m.view.Chart.Labels(), m.view.Chart.Values()
	if len(values) != 2 {
		return ""
	}

	total := values[0] + values[1]
	loanCells := 0
	if total > 0 {
		loanCells = int(math.Round(values[0] / total * splitWidth))
	}

	bar := m.theme.Loan.Render(strings.Repeat("█", loanCells)) +
		m.theme.Interest.Render(strings.Repeat("█", splitWidth-loanCells))
	if total == 0 {
		bar = m.theme.Help.Render(strings.Repeat("░", splitWidth))
	}

	legend := fmt.Sprintf("%s %s  %s %s",
		m.theme.Loan.Render("■"), labels[0],
		m.theme.Interest.Render("■"), labels[1])
	return bar + "\n" + legend
}
