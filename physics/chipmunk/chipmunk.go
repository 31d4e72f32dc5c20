// Package chipmunk runs the jar on github.com/jakecoffman/cp, a pure Go port
// of Chipmunk2D.
//
// Contacts mix friction and elasticity by product, so bounces are a little
// softer than with physics.Space, and there is no restitution threshold.
package chipmunk

import (
	"math"

	"github.com/Rshep3087/happyjar/physics"
	"github.com/jakecoffman/cp"
)

// wallThickness is the radius of the edge segments. The segments sit
// outside the container so their inner faces lie on its bounds.
const wallThickness = 20

// Space is a physics.World backed by a cp.Space.
type Space struct {
	cfg    physics.Config
	space  *cp.Space
	bodies []*Body
}

var _ physics.World = (*Space)(nil)

// NewSpace creates an empty container with four static walls.
func NewSpace(cfg physics.Config) *Space {
	d := physics.DefaultConfig(cfg.Width, cfg.Height)
	if cfg.VelocityIterations <= 0 {
		cfg.VelocityIterations = d.VelocityIterations
	}
	if cfg.MaxStep <= 0 {
		cfg.MaxStep = d.MaxStep
	}

	space := cp.NewSpace()
	space.Iterations = uint(cfg.VelocityIterations)
	space.SetGravity(toCP(cfg.Gravity))

	w, h, r := cfg.Width, cfg.Height, float64(wallThickness)
	walls := [][2]cp.Vector{
		{{X: -r, Y: -r}, {X: w + r, Y: -r}},
		{{X: -r, Y: h + r}, {X: w + r, Y: h + r}},
		{{X: -r, Y: -r}, {X: -r, Y: h + r}},
		{{X: w + r, Y: -r}, {X: w + r, Y: h + r}},
	}
	for _, wall := range walls {
		shape := space.AddShape(cp.NewSegment(space.StaticBody, wall[0], wall[1], r))
		shape.SetFriction(cfg.Boundary.Friction)
		shape.SetElasticity(cfg.Boundary.Restitution)
	}

	return &Space{cfg: cfg, space: space}
}

// Size returns the container dimensions.
func (s *Space) Size() (float64, float64) {
	return s.cfg.Width, s.cfg.Height
}

// AddBody creates a dynamic circle. A non-positive mass is treated as 1.
func (s *Space) AddBody(def physics.BodyDef) physics.Body {
	mass := def.Mass
	if mass <= 0 {
		mass = 1
	}

	body := s.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, def.Radius, cp.Vector{})))
	body.SetPosition(toCP(def.Position))
	body.SetVelocityVector(toCP(def.Velocity))
	body.SetVelocityUpdateFunc(dampedVelocity(def.LinearDamping, def.AngularDamping))

	shape := s.space.AddShape(cp.NewCircle(body, def.Radius, cp.Vector{}))
	shape.SetFriction(def.Friction)
	shape.SetElasticity(def.Restitution)

	b := &Body{body: body, radius: def.Radius, userData: def.UserData}
	s.bodies = append(s.bodies, b)
	return b
}

// dampedVelocity integrates gravity, then applies v *= 1/(1+dt*damping) to
// each body on its own instead of cp's space-wide damping.
func dampedVelocity(linear, angular float64) cp.BodyVelocityFunc {
	return func(body *cp.Body, gravity cp.Vector, _ float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, 1, dt)
		body.SetVelocityVector(body.Velocity().Mult(1 / (1 + dt*linear)))
		body.SetAngularVelocity(body.AngularVelocity() / (1 + dt*angular))
	}
}

// Bodies returns every body in creation order.
func (s *Space) Bodies() []physics.Body {
	out := make([]physics.Body, len(s.bodies))
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
		s.space.Step(h)
	}
}

// Body wraps a cp.Body with the circle radius and user data.
type Body struct {
	body     *cp.Body
	radius   float64
	userData any
}

func (b *Body) Position() physics.Vec { return fromCP(b.body.Position()) }

func (b *Body) Velocity() physics.Vec { return fromCP(b.body.Velocity()) }

func (b *Body) SetVelocity(v physics.Vec) { b.body.SetVelocityVector(toCP(v)) }

func (b *Body) Angle() float64 { return b.body.Angle() }

func (b *Body) AngularVelocity() float64 { return b.body.AngularVelocity() }

func (b *Body) Radius() float64 { return b.radius }

func (b *Body) Mass() float64 { return b.body.Mass() }

func (b *Body) UserData() any { return b.userData }

func toCP(v physics.Vec) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

func fromCP(v cp.Vector) physics.Vec { return physics.Vec{X: v.X, Y: v.Y} }
