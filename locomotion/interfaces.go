package locomotion

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Layer identifies the collision layer a piece of terrain belongs to. At most 32 layers exist.
type Layer uint8

// LayerMask is a bit set of layers a spatial query is allowed to hit.
type LayerMask uint32

// AllLayers is a mask that includes every layer.
const AllLayers = ^LayerMask(0)

// MaskOf returns a mask including exactly the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l < 32 {
			m |= 1 << l
		}
	}
	return m
}

// Includes returns true if the layer is part of the mask.
func (m LayerMask) Includes(l Layer) bool {
	return l < 32 && m&(1<<l) != 0
}

// RayHit is the result of a successful ray cast.
type RayHit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// SpatialQuery bridges the terrain for the downward ground probe used by snapping.
type SpatialQuery interface {
	RayCast(origin, direction mgl32.Vec3, maxDistance float32, mask LayerMask) (RayHit, bool)
}

// GravityProvider supplies the gravity acting at a position and the up axis derived from it.
type GravityProvider interface {
	Gravity(position mgl32.Vec3) (gravity, upAxis mgl32.Vec3)
}

// InputSpace holds the axes player input is expressed in, usually those of a camera. The axes do not
// need to be perpendicular to the up axis; they are projected onto the ground plane every step.
type InputSpace struct {
	Right   mgl32.Vec3
	Forward mgl32.Vec3
}

// Input is a single frame of player intent.
type Input struct {
	// Move is the movement intent in input space. It is clamped to unit length before use.
	Move mgl32.Vec2
	// JumpPressed and JumpReleased are edges: true only on the frame the button changed.
	JumpPressed  bool
	JumpReleased bool
	// Space is the optional input space. When nil, world right (+X) and forward (+Z) are used.
	Space *InputSpace
}

// InputProvider is sampled once per rendered frame, a cadence that is usually faster than the fixed step.
type InputProvider interface {
	Sample(now time.Duration) Input
}

// RigidBody is the handle to the physics body driven by the controller. The controller reads the
// body once at the start of a step and writes velocity and rotation back once at the end of it.
type RigidBody interface {
	Position() mgl32.Vec3
	Rotation() mgl32.Quat
	Velocity() mgl32.Vec3
	SetVelocity(v mgl32.Vec3)
	SetRotation(q mgl32.Quat)
}

// Providers groups the collaborators a controller consumes besides its body.
type Providers struct {
	// Gravity defaults to uniform standard gravity along -Y when nil.
	Gravity GravityProvider
	// Space disables ground snapping when nil.
	Space SpatialQuery
	// Input is sampled by Update. It may be nil if input is pushed through ApplyInput instead.
	Input InputProvider
}
