// Package visualizer turns deposits into bodies falling inside a bounded jar.
package visualizer

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/Rshep3087/happyjar/level"
	"github.com/Rshep3087/happyjar/physics"
	"github.com/Rshep3087/happyjar/texture"
)

// ErrInvalidTier is returned when spawning a tier outside the level table.
var ErrInvalidTier = errors.New("tier has no visual")

// State is the lifecycle of a Visualizer.
type State int

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Body material, matching a small glossy marble.
const (
	bodyFriction       = 0.5
	bodyRestitution    = 0.15
	bodyLinearDamping  = 0.2
	bodyAngularDamping = 0.2
)

// Config describes the jar. Lengths are in points; Gravity is in m/s² and is
// scaled by PointsPerMeter.
type Config struct {
	Width, Height  float64
	PointsPerMeter float64
	Gravity        float64
	// SpawnOffset is how far below the top edge new bodies appear.
	SpawnOffset float64
	// SpawnMin and SpawnMax bound the horizontal spawn band as fractions of
	// Width.
	SpawnMin, SpawnMax float64
	// MassScale multiplies the tier to give a body's mass.
	MassScale float64
	Dark      bool
}

// DefaultConfig returns a 300×400 jar with Earth gravity.
func DefaultConfig() Config {
	return Config{
		Width:          300,
		Height:         400,
		PointsPerMeter: 150,
		Gravity:        9.8,
		SpawnOffset:    50,
		SpawnMin:       0.3,
		SpawnMax:       0.7,
		MassScale:      0.1,
	}
}

// PhysicsConfig is the world configuration the visualizer starts with.
func (c Config) PhysicsConfig() physics.Config {
	cfg := physics.DefaultConfig(c.Width, c.Height)
	cfg.Gravity = physics.Vec{Y: -c.Gravity * c.PointsPerMeter}
	cfg.Boundary = physics.Material{Friction: 0.3, Restitution: 0.2}
	// bodies slower than 1 m/s do not bounce
	cfg.RestitutionThreshold = c.PointsPerMeter
	return cfg
}

// Sprite is the render state of one body.
type Sprite struct {
	Position physics.Vec
	Radius   float64
	Angle    float64
	Tier     int
	Texture  texture.Key
	// Image is shared with every other sprite of the same Texture key.
	Image image.Image
}

// Engine builds the world a visualizer runs on.
type Engine func(cfg physics.Config) physics.World

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithRand sets the random source used for spawn positions.
func WithRand(r *rand.Rand) Option {
	return func(v *Visualizer) {
		v.rng = r
	}
}

// WithTextures shares a texture cache with the visualizer.
func WithTextures(c *texture.Cache) Option {
	return func(v *Visualizer) {
		v.textures = c
	}
}

// WithEngine replaces the built-in physics.Space.
func WithEngine(e Engine) Option {
	return func(v *Visualizer) {
		v.engine = e
	}
}

// Visualizer owns one physics world and spawns a body per deposit.
type Visualizer struct {
	cfg      Config
	state    State
	world    physics.World
	rng      *rand.Rand
	textures *texture.Cache
	engine   Engine
}

// New returns an uninitialized visualizer. Zero fields of cfg take their
// DefaultConfig values.
func New(cfg Config, opts ...Option) *Visualizer {
	v := &Visualizer{cfg: withDefaults(cfg)}
	for _, opt := range opts {
		opt(v)
	}

	if v.rng == nil {
		seed := uint64(time.Now().UnixNano())
		v.rng = rand.New(rand.NewPCG(seed, seed>>32))
	}
	if v.textures == nil {
		v.textures = texture.NewCache()
	}
	if v.engine == nil {
		v.engine = func(cfg physics.Config) physics.World {
			return physics.NewSpace(cfg)
		}
	}

	return v
}

func withDefaults(c Config) Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.PointsPerMeter <= 0 {
		c.PointsPerMeter = d.PointsPerMeter
	}
	if c.Gravity == 0 {
		c.Gravity = d.Gravity
	}
	if c.SpawnOffset <= 0 {
		c.SpawnOffset = d.SpawnOffset
	}
	if c.SpawnMax <= c.SpawnMin || c.SpawnMin < 0 || c.SpawnMax > 1 {
		c.SpawnMin, c.SpawnMax = d.SpawnMin, d.SpawnMax
	}
	if c.MassScale <= 0 {
		c.MassScale = d.MassScale
	}
	return c
}

// Config returns the effective configuration.
func (v *Visualizer) Config() Config { return v.cfg }

// State reports whether the world exists yet.
func (v *Visualizer) State() State { return v.state }

// Start builds the world. Calling it again has no effect.
func (v *Visualizer) Start() {
	if v.state == Running {
		return
	}
	v.world = v.engine(v.cfg.PhysicsConfig())
	v.state = Running
}

// Spawn drops a body for tier near the top of the jar, starting the world
// first if needed. Invalid tiers leave the visualizer untouched.
func (v *Visualizer) Spawn(tier int) (Sprite, error) {
	if !level.Valid(tier) {
		return Sprite{}, fmt.Errorf("spawn tier %d: %w", tier, ErrInvalidTier)
	}

	img, err := v.textures.Get(tier, v.cfg.Dark)
	if err != nil {
		return Sprite{}, fmt.Errorf("spawn tier %d: %w", tier, err)
	}

	v.Start()

	band := v.cfg.SpawnMax - v.cfg.SpawnMin
	x := v.cfg.Width * (v.cfg.SpawnMin + v.rng.Float64()*band)
	y := v.cfg.Height - v.cfg.SpawnOffset

	body := v.world.AddBody(physics.BodyDef{
		Position:       physics.Vec{X: x, Y: y},
		Radius:         level.VisualSize(tier) / 2,
		Mass:           float64(tier) * v.cfg.MassScale,
		Friction:       bodyFriction,
		Restitution:    bodyRestitution,
		LinearDamping:  bodyLinearDamping,
		AngularDamping: bodyAngularDamping,
		UserData:       tier,
	})

	return v.sprite(body, img), nil
}

// Step advances the world by dt seconds. It is a no-op before Start.
func (v *Visualizer) Step(dt float64) {
	if v.state != Running {
		return
	}
	v.world.Step(dt)
}

// Bodies returns the render state of every body in spawn order.
func (v *Visualizer) Bodies() []Sprite {
	if v.state != Running {
		return nil
	}

	bodies := v.world.Bodies()
	sprites := make([]Sprite, 0, len(bodies))
	for _, b := range bodies {
		tier, _ := b.UserData().(int)
		// cached after the spawn, so this only fails if the shade changed
		img, _ := v.textures.Get(tier, v.cfg.Dark)
		sprites = append(sprites, v.sprite(b, img))
	}
	return sprites
}

// Len reports how many bodies the jar holds.
func (v *Visualizer) Len() int {
	if v.state != Running {
		return 0
	}
	return len(v.world.Bodies())
}

// SetDark switches the shade used for textures.
func (v *Visualizer) SetDark(dark bool) { v.cfg.Dark = dark }

// Size returns the jar dimensions in points.
func (v *Visualizer) Size() (width, height float64) { return v.cfg.Width, v.cfg.Height }

func (v *Visualizer) sprite(b physics.Body, img image.Image) Sprite {
	tier, _ := b.UserData().(int)
	return Sprite{
		Position: b.Position(),
		Radius:   b.Radius(),
		Angle:    b.Angle(),
		Tier:     tier,
		Texture:  texture.Key{Tier: tier, Dark: v.cfg.Dark},
		Image:    img,
	}
}
