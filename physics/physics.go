// Package physics defines the small rigid-body abstraction the jar needs and
// ships a circle-only implementation of it.
//
// Any 2D engine can sit behind World and Body. Space is the built-in one: a
// bounded box with gravity, semi-implicit Euler integration and a
// sequential-impulse contact solver.
package physics

// World is a bounded simulation that owns its bodies.
type World interface {
	// AddBody creates a dynamic body from def and returns it.
	AddBody(def BodyDef) Body
	// Step advances every body by dt seconds.
	Step(dt float64)
	// Bodies returns the bodies in creation order.
	Bodies() []Body
	// Size returns the width and height of the container.
	Size() (width, height float64)
}

// Body is a dynamic circle inside a World.
type Body interface {
	Position() Vec
	Velocity() Vec
	SetVelocity(v Vec)
	Angle() float64
	AngularVelocity() float64
	Radius() float64
	Mass() float64
	// UserData returns the value attached through BodyDef.
	UserData() any
}

// BodyDef describes a body to create.
type BodyDef struct {
	Position       Vec
	Velocity       Vec
	Radius         float64
	Mass           float64
	Friction       float64
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64
	UserData       any
}

// Material describes the container edges.
type Material struct {
	Friction    float64
	Restitution float64
}
