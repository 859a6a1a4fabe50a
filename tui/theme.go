package tui

import (
	"github.com/charmbracelet/lipgloss"

	"loan-calculator/chart"
)

type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Loan     lipgloss.Style
	Interest lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle(),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(chart.LoanColor)),
		Help:     lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(chart.InterestColor)),
		Card:     lipgloss.NewStyle().Padding(1, 2).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
		Loan:     lipgloss.NewStyle().Foreground(lipgloss.Color(chart.LoanColor)),
		Interest: lipgloss.NewStyle().Foreground(lipgloss.Color(chart.InterestColor)),
	}
}
