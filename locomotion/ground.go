package locomotion

import (
	"github.com/oomph-ac/locomotion/game"
)

// GroundState describes how the actor was resolved to be grounded (or not) for a step.
type GroundState uint8

const (
	Airborne GroundState = iota
	// Grounded means at least one direct ground contact was reported.
	Grounded
	// Snapped means the actor had no contact but was pulled back onto ground found by the probe.
	Snapped
	// SteepMerged means several steep contacts together form walkable ground, as in a narrow crevice.
	SteepMerged
)

func (g GroundState) String() string {
	switch g {
	case Grounded:
		return "grounded"
	case Snapped:
		return "snapped"
	case SteepMerged:
		return "steep-merged"
	default:
		return "airborne"
	}
}

// OnGround returns true for every state other than Airborne.
func (g GroundState) OnGround() bool {
	return g != Airborne
}

// resolveGround turns the contacts accumulated for the step into the ground state of the actor.
func (c *Controller) resolveGround() GroundState {
	s := &c.state
	s.StepsSinceLastGrounded++
	s.StepsSinceLastJump++
	s.FallVelocity = s.Velocity.Dot(s.UpAxis.Mul(-1))

	ground := Airborne
	if s.GroundContactCount > 0 {
		ground = Grounded
	} else if c.snapToGround() {
		ground = Snapped
	} else if c.checkSteepContacts() {
		ground = SteepMerged
	}

	if ground == Airborne {
		s.ContactNormal = s.UpAxis
		return Airborne
	}

	s.StepsSinceLastGrounded = 0
	if s.GroundContactCount > 1 {
		if n, ok := game.SafeNormalize(s.ContactNormal); ok {
			s.ContactNormal = n
		} else {
			s.ContactNormal = s.UpAxis
		}
	}
	if s.StepsSinceLastJump > 1 {
		s.Jumping = false
	}
	return ground
}

// snapToGround keeps the actor glued to the ground when it loses contact for a single step, for example
// when running over the crest of a slope or down a small step.
func (c *Controller) snapToGround() bool {
	s := &c.state
	if s.StepsSinceLastGrounded > 1 || s.StepsSinceLastJump <= 2 {
		return false
	}
	speed := s.Velocity.Len()
	if speed > c.cfg.MaxSnapSpeed {
		return false
	}
	if c.providers.Space == nil {
		return false
	}

	hit, ok := c.providers.Space.RayCast(c.body.Position(), s.UpAxis.Mul(-1), c.cfg.ProbeDistance, c.cfg.ProbeMask)
	if !ok {
		return false
	}
	normal, ok := game.SafeNormalize(hit.Normal)
	if !ok || s.UpAxis.Dot(normal) < c.minGroundDot {
		return false
	}

	s.GroundContactCount = 1
	s.ContactNormal = normal
	if dot := s.Velocity.Dot(normal); dot > 0 {
		// Moving away from the surface: bend the velocity along it without changing speed.
		dir, _ := game.SafeNormalize(s.Velocity.Sub(normal.Mul(dot)))
		s.Velocity = dir.Mul(speed)
	}
	c.log.Debug("snapped to ground", "distance", hit.Distance, "normal", normal, "speed", speed)
	return true
}

// checkSteepContacts promotes two or more steep contacts to a single ground contact if their average
// is walkable.
func (c *Controller) checkSteepContacts() bool {
	s := &c.state
	if s.SteepContactCount <= 1 {
		return false
	}
	n, ok := game.SafeNormalize(s.SteepNormal)
	if !ok {
		return false
	}
	s.SteepNormal = n
	if s.UpAxis.Dot(n) < c.minGroundDot {
		return false
	}
	s.SteepContactCount = 0
	s.GroundContactCount = 1
	s.ContactNormal = n
	return true
}
