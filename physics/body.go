package physics

// RigidBody is a dynamic circle owned by a Space.
type RigidBody struct {
	pos    Vec
	vel    Vec
	angle  float64
	angVel float64

	radius     float64
	mass       float64
	invMass    float64
	invInertia float64

	friction    float64
	restitution float64
	linDamp     float64
	angDamp     float64

	userData any
}

var _ Body = (*RigidBody)(nil)

func (b *RigidBody) Position() Vec            { return b.pos }
func (b *RigidBody) Velocity() Vec            { return b.vel }
func (b *RigidBody) SetVelocity(v Vec)        { b.vel = v }
func (b *RigidBody) Angle() float64           { return b.angle }
func (b *RigidBody) AngularVelocity() float64 { return b.angVel }
func (b *RigidBody) Radius() float64          { return b.radius }
func (b *RigidBody) Mass() float64            { return b.mass }
func (b *RigidBody) UserData() any            { return b.userData }
