package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Selector cycles through a fixed option list headed by an "all" entry.
type Selector struct {
	label    string
	allLabel string
	options  []string
	index    int

	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
}

// NewSelector creates a selector whose first option is allLabel.
func NewSelector(label, allLabel string, options []string) *Selector {
	return &Selector{
		label:      label,
		allLabel:   allLabel,
		options:    options,
		labelStyle: lipgloss.NewStyle().Bold(true),
		valueStyle: lipgloss.NewStyle(),
	}
}

// SetStyles sets the selector styles.
func (s *Selector) SetStyles(label, value lipgloss.Style) {
	s.labelStyle = label
	s.valueStyle = value
}

// Options returns every choice in display order, the "all" entry first.
func (s *Selector) Options() []string {
	return append([]string{s.allLabel}, s.options...)
}

// Next advances to the following option, wrapping around.
func (s *Selector) Next() {
	s.index = (s.index + 1) % (len(s.options) + 1)
}

// Prev moves to the previous option, wrapping around.
func (s *Selector) Prev() {
	n := len(s.options) + 1
	s.index = (s.index - 1 + n) % n
}

// Reset selects the "all" entry.
func (s *Selector) Reset() {
	s.index = 0
}

// Current returns the label of the selected option.
func (s *Selector) Current() string {
	if s.index == 0 {
		return s.allLabel
	}
	return s.options[s.index-1]
}

// Value returns the selected option, or "" when "all" is selected.
func (s *Selector) Value() string {
	if s.index == 0 {
		return ""
	}
	return s.options[s.index-1]
}

// Render renders "label: value".
func (s *Selector) Render() string {
	return s.labelStyle.Render(s.label+": ") + s.valueStyle.Render(s.Current())
}
