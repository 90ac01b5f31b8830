// Package tui provides the interactive terminal shell for transfer reports.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	PrimaryColor lipgloss.Color
	AccentColor  lipgloss.Color
	ErrorColor   lipgloss.Color
	WarningColor lipgloss.Color
	SuccessColor lipgloss.Color
	MutedColor   lipgloss.Color

	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Border    lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style
	Selected    lipgloss.Style

	// Status bar
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	primary := lipgloss.Color("#7DCFFF")
	accent := lipgloss.Color("#E0AF68")
	errColor := lipgloss.Color("#F7768E")
	warning := lipgloss.Color("#FF9E64")
	success := lipgloss.Color("#9ECE6A")
	muted := lipgloss.Color("#565F89")

	return &Theme{
		PrimaryColor: primary,
		AccentColor:  accent,
		ErrorColor:   errColor,
		WarningColor: warning,
		SuccessColor: success,
		MutedColor:   muted,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(accent).Underline(true),
		Label:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Value:     lipgloss.NewStyle().Foreground(accent),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(errColor),
		Info:      lipgloss.NewStyle().Foreground(warning),
		Success:   lipgloss.NewStyle().Foreground(success),
		Border:    lipgloss.NewStyle().Foreground(muted),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(primary),
		TableRow:    lipgloss.NewStyle(),
		TableRowAlt: lipgloss.NewStyle().Faint(true),
		Selected:    lipgloss.NewStyle().Reverse(true),

		StatusKey:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		StatusValue: lipgloss.NewStyle().Foreground(muted),
	}
}

// DrawLine draws a horizontal separator of the given width.
func (t *Theme) DrawLine(width int) string {
	if width < 1 {
		width = 1
	}
	return t.Border.Render(strings.Repeat("─", width))
}
