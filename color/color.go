// Package color provides a curated palette of colors.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Brand colors of the upstream site.
var (
	BiliPink = New("#fb7299")
	BiliBlue = New("#00aeec")
)
