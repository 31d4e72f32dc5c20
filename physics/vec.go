package physics

import "math"

// Vec is a 2D vector in world units. The world is y-up.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product.
func (v Vec) Cross(o Vec) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Perp rotates v by -90 degrees.
func (v Vec) Perp() Vec { return Vec{v.Y, -v.X} }

// crossSV returns s × v for an angular velocity s.
func crossSV(s float64, v Vec) Vec { return Vec{-s * v.Y, s * v.X} }
