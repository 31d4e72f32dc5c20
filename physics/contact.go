package physics

import "math"

type edge int

const (
	noEdge edge = iota
	leftEdge
	rightEdge
	floorEdge
	ceilingEdge
)

// contact joins body a to body b, or to a container edge when b is nil.
// The normal points from a towards b (or into the edge).
type contact struct {
	a, b *RigidBody
	edge edge
	// width/height of the container, for re-measuring edge contacts
	w, h float64

	normal      Vec
	ra, rb      Vec
	friction    float64
	restitution float64

	normalMass  float64
	tangentMass float64
	bias        float64
	jn, jt      float64
}

// measure returns the current normal and penetration depth.
func (c *contact) measure() (Vec, float64) {
	a := c.a
	switch c.edge {
	case leftEdge:
		return Vec{-1, 0}, a.radius - a.pos.X
	case rightEdge:
		return Vec{1, 0}, a.pos.X + a.radius - c.w
	case floorEdge:
		return Vec{0, -1}, a.radius - a.pos.Y
	case ceilingEdge:
		return Vec{0, 1}, a.pos.Y + a.radius - c.h
	}

	d := c.b.pos.Sub(a.pos)
	dist := d.Len()
	pen := a.radius + c.b.radius - dist
	if dist == 0 {
		return Vec{0, 1}, pen
	}
	return d.Scale(1 / dist), pen
}

func (c *contact) relativeVelocity() Vec {
	va := c.a.vel.Add(crossSV(c.a.angVel, c.ra))
	if c.b == nil {
		return va.Scale(-1)
	}
	vb := c.b.vel.Add(crossSV(c.b.angVel, c.rb))
	return vb.Sub(va)
}

func (c *contact) applyImpulse(p Vec) {
	c.a.vel = c.a.vel.Sub(p.Scale(c.a.invMass))
	c.a.angVel -= c.a.invInertia * c.ra.Cross(p)
	if c.b != nil {
		c.b.vel = c.b.vel.Add(p.Scale(c.b.invMass))
		c.b.angVel += c.b.invInertia * c.rb.Cross(p)
	}
}

func (c *contact) effectiveMass(dir Vec) float64 {
	rna := c.ra.Cross(dir)
	k := c.a.invMass + c.a.invInertia*rna*rna
	if c.b != nil {
		rnb := c.rb.Cross(dir)
		k += c.b.invMass + c.b.invInertia*rnb*rnb
	}
	if k == 0 {
		return 0
	}
	return 1 / k
}

func (c *contact) prepare(restitutionThreshold float64) {
	n := c.normal
	c.ra = n.Scale(c.a.radius)
	if c.b != nil {
		c.rb = n.Scale(-c.b.radius)
	}

	c.normalMass = c.effectiveMass(n)
	c.tangentMass = c.effectiveMass(n.Perp())

	if vn := c.relativeVelocity().Dot(n); vn < -restitutionThreshold {
		c.bias = -c.restitution * vn
	}
}

func (c *contact) solveVelocity() {
	n := c.normal
	t := n.Perp()

	// friction first so the normal impulse has the final say
	vt := c.relativeVelocity().Dot(t)
	lambda := -c.tangentMass * vt
	maxFriction := c.friction * c.jn
	jt := math.Max(-maxFriction, math.Min(c.jt+lambda, maxFriction))
	lambda = jt - c.jt
	c.jt = jt
	c.applyImpulse(t.Scale(lambda))

	vn := c.relativeVelocity().Dot(n)
	lambda = -c.normalMass * (vn - c.bias)
	jn := math.Max(c.jn+lambda, 0)
	lambda = jn - c.jn
	c.jn = jn
	c.applyImpulse(n.Scale(lambda))
}

func (c *contact) solvePosition(slop, baumgarte float64) {
	n, pen := c.measure()
	correction := baumgarte * (pen - slop)
	if correction <= 0 {
		return
	}

	k := c.a.invMass
	if c.b != nil {
		k += c.b.invMass
	}
	if k == 0 {
		return
	}

	p := n.Scale(correction / k)
	c.a.pos = c.a.pos.Sub(p.Scale(c.a.invMass))
	if c.b != nil {
		c.b.pos = c.b.pos.Add(p.Scale(c.b.invMass))
	}
}

// collide finds every touching pair and edge contact. Pairs are produced in
// ascending body order so a step is deterministic.
func (s *Space) collide() []*contact {
	var contacts []*contact

	for _, b := range s.bodies {
		for _, e := range []edge{leftEdge, rightEdge, floorEdge, ceilingEdge} {
			c := &contact{
				a: b, edge: e, w: s.cfg.Width, h: s.cfg.Height,
				friction:    mixFriction(b.friction, s.cfg.Boundary.Friction),
				restitution: math.Max(b.restitution, s.cfg.Boundary.Restitution),
			}
			if n, pen := c.measure(); pen > 0 {
				c.normal = n
				contacts = append(contacts, c)
			}
		}
	}

	for _, p := range s.candidatePairs() {
		a, b := s.bodies[p[0]], s.bodies[p[1]]
		c := &contact{
			a: a, b: b,
			friction:    mixFriction(a.friction, b.friction),
			restitution: math.Max(a.restitution, b.restitution),
		}
		if n, pen := c.measure(); pen > 0 {
			c.normal = n
			contacts = append(contacts, c)
		}
	}

	return contacts
}

func mixFriction(a, b float64) float64 {
	return math.Sqrt(a * b)
}
