package physics

import (
	"math"
)

// Config tunes a Space. Zero fields are filled from DefaultConfig.
type Config struct {
	Width, Height float64
	// Gravity is the acceleration applied to every body, in units/s².
	Gravity  Vec
	Boundary Material

	VelocityIterations int
	PositionIterations int
	// RestitutionThreshold is the approach speed below which contacts do
	// not bounce, in units/s.
	RestitutionThreshold float64
	// Slop is the penetration allowed before positions are corrected.
	Slop float64
	// Baumgarte is the fraction of penetration removed per position pass.
	Baumgarte float64
	// MaxStep is the largest sub-step Step integrates at once, in seconds.
	MaxStep float64
}

// DefaultConfig returns a container of the given size with Earth gravity in
// raw units, a frictional edge and solver settings suited to a few hundred
// circles.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:                width,
		Height:               height,
		Gravity:              Vec{0, -9.8},
		Boundary:             Material{Friction: 0.3, Restitution: 0.2},
		VelocityIterations:   8,
		PositionIterations:   3,
		RestitutionThreshold: 1,
		Slop:                 0.5,
		Baumgarte:            0.2,
		MaxStep:              1.0 / 60,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig(c.Width, c.Height)
	if c.VelocityIterations <= 0 {
		c.VelocityIterations = d.VelocityIterations
	}
	if c.PositionIterations <= 0 {
		c.PositionIterations = d.PositionIterations
	}
	if c.RestitutionThreshold <= 0 {
		c.RestitutionThreshold = d.RestitutionThreshold
	}
	if c.Slop <= 0 {
		c.Slop = d.Slop
	}
	if c.Baumgarte <= 0 {
		c.Baumgarte = d.Baumgarte
	}
	if c.MaxStep <= 0 {
		c.MaxStep = d.MaxStep
	}
	return c
}

// Space is the built-in World: a box with edges on all four sides.
type Space struct {
	cfg       Config
	bodies    []*RigidBody
	maxRadius float64
}

var _ World = (*Space)(nil)

// NewSpace creates an empty container.
func NewSpace(cfg Config) *Space {
	return &Space{cfg: cfg.withDefaults()}
}

// Size returns the container dimensions.
func (s *Space) Size() (float64, float64) {
	return s.cfg.Width, s.cfg.Height
}

// AddBody creates a dynamic circle. A non-positive mass is treated as 1.
func (s *Space) AddBody(def BodyDef) Body {
	mass := def.Mass
	if mass <= 0 {
		mass = 1
	}

	b := &RigidBody{
		pos:         def.Position,
		vel:         def.Velocity,
		radius:      def.Radius,
		mass:        mass,
		invMass:     1 / mass,
		friction:    def.Friction,
		restitution: def.Restitution,
		linDamp:     def.LinearDamping,
		angDamp:     def.AngularDamping,
		userData:    def.UserData,
	}
	if inertia := 0.5 * mass * def.Radius * def.Radius; inertia > 0 {
		b.invInertia = 1 / inertia
	}

	s.bodies = append(s.bodies, b)
	s.maxRadius = math.Max(s.maxRadius, def.Radius)

	return b
}

// Bodies returns every body in creation order.
func (s *Space) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b
	}
	return out
}

// Step advances the simulation by dt seconds, split into sub-steps no longer
// than Config.MaxStep. Non-positive dt does nothing.
func (s *Space) Step(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}

	n := int(math.Ceil(dt / s.cfg.MaxStep))
	h := dt / float64(n)
	for range n {
		s.step(h)
	}
}

func (s *Space) step(h float64) {
	for _, b := range s.bodies {
		b.vel = b.vel.Add(s.cfg.Gravity.Scale(h))
		b.vel = b.vel.Scale(1 / (1 + h*b.linDamp))
		b.angVel *= 1 / (1 + h*b.angDamp)
	}

	contacts := s.collide()
	for _, c := range contacts {
		c.prepare(s.cfg.RestitutionThreshold)
	}
	for range s.cfg.VelocityIterations {
		for _, c := range contacts {
			c.solveVelocity()
		}
	}

	for _, b := range s.bodies {
		b.pos = b.pos.Add(b.vel.Scale(h))
		b.angle += b.angVel * h
	}

	for range s.cfg.PositionIterations {
		for _, c := range contacts {
			c.solvePosition(s.cfg.Slop, s.cfg.Baumgarte)
		}
	}

	for _, b := range s.bodies {
		s.contain(b)
	}
}

// contain keeps a body inside the container after solving, removing any
// velocity that still points out through an edge.
func (s *Space) contain(b *RigidBody) {
	r := b.radius
	w, ht := s.cfg.Width, s.cfg.Height

	if b.pos.X < r {
		b.pos.X = r
		b.vel.X = math.Max(b.vel.X, 0)
	} else if b.pos.X > w-r {
		b.pos.X = w - r
		b.vel.X = math.Min(b.vel.X, 0)
	}
	if b.pos.Y < r {
		b.pos.Y = r
		b.vel.Y = math.Max(b.vel.Y, 0)
	} else if b.pos.Y > ht-r {
		b.pos.Y = ht - r
		b.vel.Y = math.Min(b.vel.Y, 0)
	}
}
