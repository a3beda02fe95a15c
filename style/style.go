// Package style wraps lipgloss into small render functions for CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kaltdl/kaltdl/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a render function applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Box frames content in a rounded border tinted with c.
func Box(c lipgloss.Color, content string) string {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(1, 2).
		Margin(1, 0).
		Render(content)
}

// Command renders a generated shell command so it stands out from surrounding text.
var Command = func(s string) string {
	return New().Foreground(color.HiCyan).Render(s)
}
