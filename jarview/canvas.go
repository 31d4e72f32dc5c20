package jarview

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/Rshep3087/happyjar/visualizer"
	"github.com/charmbracelet/lipgloss"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	// alphaCutoff is the texture opacity below which a pixel counts as empty.
	alphaCutoff = 0x4000
)

// Pixels is a rasterised jar, row 0 at the top. A zero alpha marks an empty
// pixel.
type Pixels struct {
	Width, Height int
	pix           []color.NRGBA
}

func (p Pixels) At(x, y int) color.NRGBA {
	return p.pix[y*p.Width+x]
}

// fit returns the largest pixel grid with the jar's aspect ratio inside
// cols × rows*2.
func fit(worldW, worldH float64, cols, rows int) (int, int) {
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return 0, 0
	}
	maxW, maxH := float64(cols), float64(rows*2)
	scale := math.Min(maxW/worldW, maxH/worldH)
	w := max(1, int(math.Round(worldW*scale)))
	h := max(1, int(math.Round(worldH*scale)))
	return min(w, cols), min(h, rows*2)
}

// Rasterize samples each sprite's texture into a pixel grid of w × h
// covering a worldW × worldH jar. Later sprites draw over earlier ones.
func Rasterize(sprites []visualizer.Sprite, worldW, worldH float64, w, h int) Pixels {
	p := Pixels{Width: w, Height: h, pix: make([]color.NRGBA, w*h)}
	if w == 0 || h == 0 {
		return p
	}

	sx := worldW / float64(w)
	sy := worldH / float64(h)

	for _, s := range sprites {
		if s.Image == nil {
			continue
		}
		b := s.Image.Bounds()
		half := float64(b.Dx()) / 2
		sin, cos := math.Sincos(-s.Angle)

		// pixel bounds of the sprite's bounding circle
		x0 := max(0, int((s.Position.X-s.Radius)/sx))
		x1 := min(w-1, int((s.Position.X+s.Radius)/sx))
		y0 := max(0, int((worldH-s.Position.Y-s.Radius)/sy))
		y1 := min(h-1, int((worldH-s.Position.Y+s.Radius)/sy))

		for py := y0; py <= y1; py++ {
			for px := x0; px <= x1; px++ {
				dx := (float64(px)+0.5)*sx - s.Position.X
				dy := worldH - (float64(py)+0.5)*sy - s.Position.Y
				// rotate into the body frame
				lx := dx*cos - dy*sin
				ly := dx*sin + dy*cos
				u := int(math.Floor(half + lx))
				v := int(math.Floor(half - ly))
				if u < 0 || v < 0 || u >= b.Dx() || v >= b.Dy() {
					continue
				}
				c := s.Image.At(b.Min.X+u, b.Min.Y+v)
				if _, _, _, a := c.RGBA(); a < alphaCutoff {
					continue
				}
				n := color.NRGBAModel.Convert(c).(color.NRGBA)
				n.A = 0xff
				p.pix[py*w+px] = n
			}
		}
	}

	return p
}

// Canvas turns pixels into half-block terminal cells.
type Canvas struct {
	styles map[[2]string]lipgloss.Style
}

func newCanvas() *Canvas {
	return &Canvas{styles: make(map[[2]string]lipgloss.Style)}
}

func hex(c color.NRGBA) string {
	if c.A == 0 {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c *Canvas) style(fg, bg string) lipgloss.Style {
	k := [2]string{fg, bg}
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	c.styles[k] = s
	return s
}

// Render draws p two pixel rows per line.
func (c *Canvas) Render(p Pixels) string {
	var b strings.Builder
	for y := 0; y < p.Height; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < p.Width; x++ {
			top := hex(p.At(x, y))
			bottom := ""
			if y+1 < p.Height {
				bottom = hex(p.At(x, y+1))
			}

			switch {
			case top == "" && bottom == "":
				b.WriteByte(' ')
			case top == "":
				b.WriteString(c.style(bottom, "").Render(lowerHalf))
			default:
				b.WriteString(c.style(top, bottom).Render(upperHalf))
			}
		}
	}
	return b.String()
}
