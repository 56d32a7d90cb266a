package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// adjustVelocity moves the components of velocity along the ground-aligned right and forward axes
// towards the X and Z components of desired, by at most maxSpeedChange each. Only the difference is
// added, so the component along the contact normal (gravity, jumps) is left alone.
func adjustVelocity(velocity, desired, contactNormal, rightAxis, forwardAxis mgl32.Vec3, maxSpeedChange float32) mgl32.Vec3 {
	xAxis := game.ProjectDirectionOnPlane(rightAxis, contactNormal)
	zAxis := game.ProjectDirectionOnPlane(forwardAxis, contactNormal)

	currentX := velocity.Dot(xAxis)
	currentZ := velocity.Dot(zAxis)

	newX := game.MoveTowards(currentX, desired.X(), maxSpeedChange)
	newZ := game.MoveTowards(currentZ, desired.Z(), maxSpeedChange)

	return velocity.Add(xAxis.Mul(newX - currentX)).Add(zAxis.Mul(newZ - currentZ))
}

// planHorizontalVelocity steers the actor towards the desired velocity, with full control on the ground
// and reduced control in the air.
func (c *Controller) planHorizontalVelocity(desired, contactNormal, rightAxis, forwardAxis mgl32.Vec3, onGround bool, dt float32) {
	acceleration := c.cfg.MaxAirAcceleration
	if onGround {
		acceleration = c.cfg.MaxAcceleration
	}
	c.state.Velocity = adjustVelocity(c.state.Velocity, desired, contactNormal, rightAxis, forwardAxis, acceleration*dt)
}

// integrateGravity applies gravity while the actor is airborne or has just jumped. Gravity never pushes
// the fall velocity past MaxFallSpeed: the last increment is cut short instead of overshooting.
func (c *Controller) integrateGravity(gravity mgl32.Vec3, dt float32) bool {
	s := &c.state
	if s.OnGround() && s.StepsSinceLastJump != 0 {
		return false
	}
	if s.FallVelocity >= c.cfg.MaxFallSpeed {
		return false
	}

	s.Velocity = s.Velocity.Add(gravity.Mul(dt))
	s.FallVelocity = s.Velocity.Dot(s.UpAxis.Mul(-1))
	if excess := s.FallVelocity - c.cfg.MaxFallSpeed; excess > 0 {
		s.Velocity = s.Velocity.Add(s.UpAxis.Mul(excess))
		s.FallVelocity = c.cfg.MaxFallSpeed
	}
	return true
}
