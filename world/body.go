package world

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/locomotion"
)

// Body is a sphere moved by a World. It implements locomotion.RigidBody. A body is only safe to use from
// the goroutine stepping its world.
type Body struct {
	position mgl32.Vec3
	velocity mgl32.Vec3
	rotation mgl32.Quat
	radius   float32
	mask     locomotion.LayerMask

	contacts []mgl32.Vec3
	touched  []ColliderID
}

// Position ...
func (b *Body) Position() mgl32.Vec3 {
	return b.position
}

// SetPosition teleports the body.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.position = pos
}

// Velocity ...
func (b *Body) Velocity() mgl32.Vec3 {
	return b.velocity
}

// SetVelocity ...
func (b *Body) SetVelocity(vel mgl32.Vec3) {
	b.velocity = vel
}

// Rotation ...
func (b *Body) Rotation() mgl32.Quat {
	return b.rotation
}

// SetRotation ...
func (b *Body) SetRotation(rot mgl32.Quat) {
	b.rotation = rot
}

// Radius returns the radius of the sphere.
func (b *Body) Radius() float32 {
	return b.radius
}

// Contacts returns the normals of the surfaces touched during the last world step, one per collider. The
// slice is reused by the next step.
func (b *Body) Contacts() []mgl32.Vec3 {
	return b.contacts
}

// touch records a contact with the collider passed, at most once per step. Later passes of the same step
// replace the normal since they see the resolved position.
func (b *Body) touch(id ColliderID, normal mgl32.Vec3) {
	if i := slices.Index(b.touched, id); i >= 0 {
		b.contacts[i] = normal
		return
	}
	b.touched = append(b.touched, id)
	b.contacts = append(b.contacts, normal)
}
