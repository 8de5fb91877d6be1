// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"github.com/bilihot/bilihot/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Heading renders the summary banner in the site's brand color.
var Heading = func(s string) string {
	return New().Bold(true).Foreground(color.BiliPink).Render(s)
}

// Label renders a summary field label.
var Label = func(s string) string {
	return New().Foreground(color.BiliBlue).Render(s)
}

// Identity leaves its input unchanged; used where styling is disabled.
func Identity(s string) string {
	return s
}
