package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// facingRotation turns rotation a fixed share of the way towards the direction the actor is moving in,
// keeping contactNormal as its up axis. When velocity has no component along the ground plane, the
// fallback forward axis is used. If neither gives a direction the rotation is returned unchanged.
func facingRotation(rotation mgl32.Quat, velocity, contactNormal, fallbackForward mgl32.Vec3) mgl32.Quat {
	facing := game.ProjectDirectionOnPlane(velocity, contactNormal)
	if facing == (mgl32.Vec3{}) {
		facing = game.ProjectDirectionOnPlane(fallbackForward, contactNormal)
	}
	target, ok := game.LookRotation(facing, contactNormal)
	if !ok {
		return rotation
	}
	return game.SlerpRotation(rotation, target, game.RotationBlendFactor)
}

// updateFacing returns the rotation of the actor for the current step.
func (c *Controller) updateFacing(velocity, contactNormal, fallbackForward mgl32.Vec3) mgl32.Quat {
	return facingRotation(c.state.Rotation, velocity, contactNormal, fallbackForward)
}
