package game

const (
	DefaultMaxSpeed           = float32(10)
	DefaultMaxAcceleration    = float32(10)
	DefaultMaxAirAcceleration = float32(1)
	DefaultMaxGroundAngle     = float32(40)
	DefaultJumpHeight         = float32(1.6)
	DefaultMaxSnapSpeed       = float32(60)
	DefaultMaxFallSpeed       = float32(30)
	DefaultProbeDistance      = float32(1)

	// Upper bounds accepted for the configuration. Values outside are clamped, never rejected.
	MaxSpeedLimit        = float32(100)
	MaxAccelerationLimit = float32(100)
	MaxGroundAngleLimit  = float32(90)
	MaxJumpHeightLimit   = float32(10)
	MaxSnapSpeedLimit    = float32(100)
	MaxFallSpeedLimit    = float32(100)

	// SteepContactThreshold is the lowest up-dot a contact may have and still count as a wall rather
	// than a ceiling.
	SteepContactThreshold = float32(-0.01)
	// RotationBlendFactor is the per-step ratio used to turn the actor towards its facing direction.
	RotationBlendFactor = float32(0.08)
	// StopJumpVelocityFactor is the share of upward velocity removed when a jump is released early.
	StopJumpVelocityFactor = float32(0.5)

	StandardGravity = float32(9.81)
)
