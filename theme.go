package main

import (
	"github.com/Rshep3087/happyjar/config"
	"github.com/Rshep3087/happyjar/level"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color

	// Match highlights search hits and Withdrawal marks given-back amounts.
	// Both come from the heart palette.
	Match      lipgloss.Color
	Withdrawal lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#ff8fab"),
		Error:         parseColor(colors.Error, "#ff0000"),
		Success:       parseColor(colors.Success, "#22ba46"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Border:        parseColor(colors.Border, "#7D56F4"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
		Match:         heartColor(level.MaxTier),
		Withdrawal:    heartColor(level.MaxTier - 1),
	}
}

// heartColor is the light pastel of tier as a terminal colour.
func heartColor(tier int) lipgloss.Color {
	return lipgloss.Color(level.Hex(level.Color(tier, false)))
}

// parseColor returns colorStr as a lipgloss.Color, or defaultColor when it
// is empty. Hex ("#ff0000") and ANSI ("21") values are both accepted.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	return lipgloss.Color(colorStr)
}
