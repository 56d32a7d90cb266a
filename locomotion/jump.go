package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// tryJump consumes a pending jump request and launches the actor if it is on the ground. It returns
// true if an impulse was applied.
func (c *Controller) tryJump(gravity mgl32.Vec3) bool {
	s := &c.state
	if !s.DesiredJump {
		return false
	}
	s.DesiredJump = false
	if !s.OnGround() {
		c.log.Debug("jump rejected, not on ground", "stepsSinceLastGrounded", s.StepsSinceLastGrounded)
		return false
	}

	// Leaning the jump towards up keeps the arc predictable on slopes.
	jumpDirection, ok := game.SafeNormalize(s.ContactNormal.Add(s.UpAxis))
	if !ok {
		jumpDirection = s.UpAxis
	}

	jumpSpeed := math32.Sqrt(2 * gravity.Len() * c.cfg.JumpHeight)
	alignedSpeed := s.Velocity.Dot(jumpDirection)
	jumpSpeed = math32.Max(jumpSpeed-alignedSpeed, 0)

	s.Jumping = true
	s.StepsSinceLastJump = 0
	s.Velocity = s.Velocity.Add(jumpDirection.Mul(jumpSpeed))
	c.log.Debug("jump", "speed", jumpSpeed, "direction", jumpDirection)
	return true
}

// tryStopJump consumes a pending jump release and cuts the ascent of a jump that is still going up.
func (c *Controller) tryStopJump() bool {
	s := &c.state
	if !s.StopJump {
		return false
	}
	s.StopJump = false
	if !s.Jumping || s.FallVelocity >= 0 {
		return false
	}

	s.Jumping = false
	s.Velocity = s.Velocity.Add(s.UpAxis.Mul(s.FallVelocity * game.StopJumpVelocityFactor))
	s.FallVelocity = s.Velocity.Dot(s.UpAxis.Mul(-1))
	c.log.Debug("jump released early", "velocity", s.Velocity)
	return true
}
