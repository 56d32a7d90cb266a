package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// State holds the locomotion state of a single actor. It is owned by the Controller and only mutated
// inside a step.
type State struct {
	Velocity        mgl32.Vec3
	DesiredVelocity mgl32.Vec3

	// ContactNormal and SteepNormal are running sums while contacts are accumulated. After ground
	// resolution ContactNormal is the unit ground normal, or the up axis when airborne.
	ContactNormal mgl32.Vec3
	SteepNormal   mgl32.Vec3

	GroundContactCount int
	SteepContactCount  int

	UpAxis      mgl32.Vec3
	RightAxis   mgl32.Vec3
	ForwardAxis mgl32.Vec3

	Rotation     mgl32.Quat
	FallVelocity float32

	StepsSinceLastGrounded int
	StepsSinceLastJump     int

	DesiredJump bool
	StopJump    bool
	Jumping     bool
}

func newState(rotation mgl32.Quat) State {
	return State{
		UpAxis:      game.WorldUp,
		RightAxis:   game.WorldRight,
		ForwardAxis: game.WorldForward,
		Rotation:    rotation,
	}
}

// OnGround returns true if at least one ground contact was registered for the current step.
func (s *State) OnGround() bool {
	return s.GroundContactCount > 0
}

// OnSteep returns true if at least one steep contact was registered for the current step.
func (s *State) OnSteep() bool {
	return s.SteepContactCount > 0
}

// clearContacts resets the accumulation state so the next step starts without contacts.
func (s *State) clearContacts() {
	s.GroundContactCount, s.SteepContactCount = 0, 0
	s.ContactNormal, s.SteepNormal = mgl32.Vec3{}, mgl32.Vec3{}
}
