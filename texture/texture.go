// Package texture renders the heart-shaped skins of jar bodies.
package texture

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// ErrInvalidSize is returned when asked to render a non-positive size.
var ErrInvalidSize = errors.New("texture size must be positive")

const (
	fillOpacity      = 0.9
	highlightOpacity = 0.6
	strokeOpacity    = 0.3
	strokeWidth      = 1.5
)

// Render draws a size×size heart filled with base at 90% opacity, a soft
// white radial highlight towards the upper left lobe and a thin translucent
// white outline. The result depends only on its arguments.
func Render(size float64, base color.Color) (image.Image, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, ErrInvalidSize
	}

	px := int(math.Ceil(size))
	dc := gg.NewContext(px, px)

	heartPath(dc, size)
	r, g, b, _ := rgb(base)
	dc.SetRGBA(r, g, b, fillOpacity)
	dc.FillPreserve()

	// highlight, clipped to the silhouette
	dc.ClipPreserve()
	highlight := gg.NewRadialGradient(size*0.3, size*0.3, 0, size*0.5, size*0.5, size*0.6)
	highlight.AddColorStop(0, color.NRGBA{R: 255, G: 255, B: 255, A: alpha(highlightOpacity)})
	highlight.AddColorStop(1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	dc.SetFillStyle(highlight)
	dc.FillPreserve()
	dc.ResetClip()

	dc.SetRGBA(1, 1, 1, strokeOpacity)
	dc.SetLineWidth(strokeWidth)
	dc.Stroke()

	return dc.Image(), nil
}

// heartPath traces the silhouette in image coordinates (y down). The tip
// sits at the bottom centre; two cubic curves rise to the sides and two
// half circles of radius size/4 form the lobes.
func heartPath(dc *gg.Context, size float64) {
	s := size
	tip := gg.Point{X: s / 2, Y: s}

	dc.NewSubPath()
	dc.MoveTo(tip.X, tip.Y)
	dc.CubicTo(s/2, s*0.7, 0, s*0.8, 0, s*0.3)
	dc.DrawArc(s*0.25, s*0.25, s*0.25, math.Pi, 2*math.Pi)
	dc.DrawArc(s*0.75, s*0.25, s*0.25, math.Pi, 2*math.Pi)
	dc.CubicTo(s, s*0.8, s/2, s*0.7, tip.X, tip.Y)
	dc.ClosePath()
}

func rgb(c color.Color) (r, g, b, a float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255, float64(n.A) / 255
}

func alpha(opacity float64) uint8 {
	return uint8(math.Round(opacity * 255))
}
