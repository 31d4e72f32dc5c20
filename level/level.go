// Package level maps a deposit tier to its display value, visual size and
// palette colour.
package level

import (
	"fmt"
	"image/color"
)

// Tier bounds.
const (
	MinTier = 1
	MaxTier = 5
)

// DefaultSize is the visual size used for tiers outside MinTier..MaxTier.
const DefaultSize = 40.0

var (
	values = [...]int{5, 10, 50, 100, 500}
	sizes  = [...]float64{30, 40, 50, 60, 70}
	names  = [...]string{"a little happy", "happy", "very happy", "wonderful", "best day ever"}

	pastel = [...]color.RGBA{
		{R: 167, G: 215, B: 247, A: 255}, // blue
		{R: 188, G: 234, B: 188, A: 255}, // green
		{R: 253, G: 253, B: 196, A: 255}, // yellow
		{R: 255, G: 204, B: 169, A: 255}, // orange
		{R: 255, G: 179, B: 186, A: 255}, // red
	}
	darkPastel = [...]color.RGBA{
		{R: 106, G: 168, B: 204, A: 255},
		{R: 124, G: 191, B: 124, A: 255},
		{R: 228, G: 228, B: 146, A: 255},
		{R: 245, G: 174, B: 132, A: 255},
		{R: 230, G: 138, B: 146, A: 255},
	}

	pastelGray     = color.RGBA{R: 207, G: 207, B: 207, A: 255}
	darkPastelGray = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// Valid reports whether tier is within MinTier..MaxTier.
func Valid(tier int) bool {
	return tier >= MinTier && tier <= MaxTier
}

// Tiers returns every valid tier in ascending order.
func Tiers() []int {
	tiers := make([]int, 0, MaxTier-MinTier+1)
	for t := MinTier; t <= MaxTier; t++ {
		tiers = append(tiers, t)
	}
	return tiers
}

// DisplayValue returns the amount a deposit of the given tier adds to the
// balance, or 0 for an out-of-range tier.
func DisplayValue(tier int) int {
	if !Valid(tier) {
		return 0
	}
	return values[tier-1]
}

// VisualSize returns the edge length of a tier's heart, or DefaultSize.
func VisualSize(tier int) float64 {
	if !Valid(tier) {
		return DefaultSize
	}
	return sizes[tier-1]
}

// Name returns a short human label for the tier.
func Name(tier int) string {
	if !Valid(tier) {
		return fmt.Sprintf("tier %d", tier)
	}
	return names[tier-1]
}

// Color returns the pastel colour of a tier. Dark selects the deeper shade
// used for outlines and dark backgrounds. Out-of-range tiers are gray.
func Color(tier int, dark bool) color.RGBA {
	if !Valid(tier) {
		if dark {
			return darkPastelGray
		}
		return pastelGray
	}
	if dark {
		return darkPastel[tier-1]
	}
	return pastel[tier-1]
}

// Hex formats c as #rrggbb for use as a terminal colour.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
