package locomotion

import "github.com/go-gl/mathgl/mgl32"

// Phase is a stage of a controller step. Phases always run in the order they are declared in.
type Phase uint8

const (
	PhaseAccumulateContacts Phase = iota
	PhaseResolveGround
	PhasePlanVelocity
	PhaseJump
	PhaseIntegrateGravity
	PhaseStopJumpCheck
	PhaseSmoothOrientation
	PhaseCommit
	PhaseResetAccumulators
)

func (p Phase) String() string {
	switch p {
	case PhaseAccumulateContacts:
		return "AccumulateContacts"
	case PhaseResolveGround:
		return "ResolveGround"
	case PhasePlanVelocity:
		return "PlanVelocity"
	case PhaseJump:
		return "Jump"
	case PhaseIntegrateGravity:
		return "IntegrateGravity"
	case PhaseStopJumpCheck:
		return "StopJumpCheck"
	case PhaseSmoothOrientation:
		return "SmoothOrientation"
	case PhaseCommit:
		return "Commit"
	case PhaseResetAccumulators:
		return "ResetAccumulators"
	}
	return "Unknown"
}

// StepResult captures the outcome of a single controller step.
type StepResult struct {
	Step uint64

	Ground        GroundState
	OnSteep       bool
	ContactNormal mgl32.Vec3
	UpAxis        mgl32.Vec3

	Velocity     mgl32.Vec3
	Rotation     mgl32.Quat
	FallVelocity float32

	Jumped         bool
	StoppedJump    bool
	GravityApplied bool
	Jumping        bool

	// Skipped is true when the step did not simulate anything because the time step was unusable.
	Skipped bool
}
