package visualizer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Snapshot draws sprites over background as the jar of the given size looks
// right now. The world is y-up; the image is y-down.
func Snapshot(sprites []Sprite, width, height float64, background color.Color) (image.Image, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("snapshot %vx%v: invalid size", width, height)
	}

	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	dc.SetColor(background)
	dc.Clear()

	for _, s := range sprites {
		if s.Image == nil {
			continue
		}

		dc.Push()
		dc.Translate(s.Position.X, height-s.Position.Y)
		dc.Rotate(-s.Angle)
		dc.DrawImageAnchored(s.Image, 0, 0, 0.5, 0.5)
		dc.Pop()
	}

	return dc.Image(), nil
}
