package texture

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/Rshep3087/happyjar/level"
	"golang.org/x/sync/errgroup"
)

// Key identifies one cached texture. Only tiers in level.Tiers() and two
// shades exist, so a cache never holds more than ten images.
type Key struct {
	Tier int
	Dark bool
}

func (k Key) String() string {
	shade := "light"
	if k.Dark {
		shade = "dark"
	}
	return fmt.Sprintf("tier-%d-%s", k.Tier, shade)
}

// Cache memoises rendered textures by Key. It is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	images map[Key]image.Image
	render func(size float64, tier int, dark bool) (image.Image, error)
}

// NewCache returns an empty cache rendering with Render.
func NewCache() *Cache {
	return &Cache{
		images: make(map[Key]image.Image),
		render: func(size float64, tier int, dark bool) (image.Image, error) {
			return Render(size, level.Color(tier, dark))
		},
	}
}

// Get returns the texture for tier in the given shade, rendering it on first
// use. Tiers outside the level table render at the default size in gray and
// are not cached.
func (c *Cache) Get(tier int, dark bool) (image.Image, error) {
	key := Key{Tier: tier, Dark: dark}
	if !level.Valid(tier) {
		return c.render(level.VisualSize(tier), tier, dark)
	}

	c.mu.Lock()
	img, ok := c.images[key]
	c.mu.Unlock()
	if ok {
		return img, nil
	}

	img, err := c.render(level.VisualSize(tier), tier, dark)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", key, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// keep the first image if another goroutine won the race
	if existing, ok := c.images[key]; ok {
		return existing, nil
	}
	c.images[key] = img
	return img, nil
}

// Warm renders every tier of one shade concurrently.
func (c *Cache) Warm(ctx context.Context, dark bool) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, tier := range level.Tiers() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := c.Get(tier, dark)
			return err
		})
	}
	return g.Wait()
}

// Len reports how many textures are cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}
