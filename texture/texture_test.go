package texture

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"sync/atomic"
	"testing"

	"github.com/carlmjohnson/be"
)

var pink = color.RGBA{R: 255, G: 182, B: 193, A: 255}

func TestRenderRejectsBadSize(t *testing.T) {
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Render(size, pink)
		be.True(t, errors.Is(err, ErrInvalidSize))
	}
}

func TestRenderSilhouette(t *testing.T) {
	img, err := Render(40, pink)
	be.NilErr(t, err)
	be.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())

	alphaAt := func(x, y int) uint32 {
		_, _, _, a := img.At(x, y).RGBA()
		return a
	}

	// centre of the body is filled, corners are outside the heart
	be.True(t, alphaAt(20, 20) > 0)
	be.True(t, alphaAt(10, 10) > 0)
	be.True(t, alphaAt(30, 10) > 0)
	be.Equal(t, uint32(0), alphaAt(0, 39))
	be.Equal(t, uint32(0), alphaAt(39, 39))
	// notch between the lobes
	be.Equal(t, uint32(0), alphaAt(20, 0))
}

func TestRenderIsDeterministic(t *testing.T) {
	a, err := Render(30, pink)
	be.NilErr(t, err)
	b, err := Render(30, pink)
	be.NilErr(t, err)

	ra, rb := a.(*image.RGBA), b.(*image.RGBA)
	be.AllEqual(t, ra.Pix, rb.Pix)
}

func TestRenderTintsWithBase(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	img, err := Render(60, blue)
	be.NilErr(t, err)

	// lower half sits away from the highlight so the base dominates
	r, _, b, _ := img.At(30, 45).RGBA()
	be.True(t, b > r)
}

func TestCacheGet(t *testing.T) {
	c := NewCache()
	var calls atomic.Int32
	inner := c.render
	c.render = func(size float64, tier int, dark bool) (image.Image, error) {
		calls.Add(1)
		return inner(size, tier, dark)
	}

	first, err := c.Get(3, false)
	be.NilErr(t, err)
	second, err := c.Get(3, false)
	be.NilErr(t, err)
	be.Equal(t, first, second)
	be.Equal(t, int32(1), calls.Load())
	be.Equal(t, image.Rect(0, 0, 50, 50), first.Bounds())

	_, err = c.Get(3, true)
	be.NilErr(t, err)
	be.Equal(t, int32(2), calls.Load())
	be.Equal(t, 2, c.Len())
}

func TestCacheSkipsUnknownTiers(t *testing.T) {
	c := NewCache()
	img, err := c.Get(9, false)
	be.NilErr(t, err)
	be.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	be.Equal(t, 0, c.Len())
}

func TestCacheWarm(t *testing.T) {
	c := NewCache()
	be.NilErr(t, c.Warm(context.Background(), false))
	be.Equal(t, 5, c.Len())
	be.NilErr(t, c.Warm(context.Background(), true))
	be.Equal(t, 10, c.Len())
}

func TestCacheWarmPropagatesErrors(t *testing.T) {
	c := NewCache()
	boom := errors.New("boom")
	c.render = func(float64, int, bool) (image.Image, error) { return nil, boom }

	err := c.Warm(context.Background(), false)
	be.True(t, errors.Is(err, boom))
	be.Equal(t, 0, c.Len())
}

func TestCacheWarmCancelled(t *testing.T) {
	c := NewCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	be.True(t, errors.Is(c.Warm(ctx, false), context.Canceled))
}

func TestKeyString(t *testing.T) {
	be.Equal(t, "tier-2-dark", Key{Tier: 2, Dark: true}.String())
	be.Equal(t, "tier-5-light", Key{Tier: 5}.String())
}
