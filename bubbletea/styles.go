package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/voyagecli/voyage"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	UserMsg      lipgloss.Style
	Element      lipgloss.Style
	ElementFocus lipgloss.Style
	CardTitle    lipgloss.Style
	CardBorder   lipgloss.Style
	Price        lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Muted        lipgloss.Style
	Accent       lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t voyage.Theme) Styles {
	return Styles{
		UserMsg:      lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		Element:      lipgloss.NewStyle().Foreground(ansiColor(t.Element)),
		ElementFocus: lipgloss.NewStyle().Foreground(ansiColor(t.Element)).Bold(true).Reverse(true),
		CardTitle:    lipgloss.NewStyle().Foreground(ansiColor(t.Card)).Bold(true),
		CardBorder:   lipgloss.NewStyle().Foreground(ansiColor(t.Card)),
		Price:        lipgloss.NewStyle().Foreground(ansiColor(t.Price)).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:      lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:        lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
