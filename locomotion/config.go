package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/oerror"
)

// Config is the tuning of a single actor. It is constant during a step and only changes through
// (*Controller).SetConfig, which validates it and recomputes the derived ground threshold.
type Config struct {
	// MaxSpeed is the horizontal speed reached at full input.
	MaxSpeed float32 `toml:"max_speed" yaml:"max_speed"`
	// MaxAcceleration and MaxAirAcceleration cap the change of horizontal speed per second on the ground
	// and in the air respectively.
	MaxAcceleration    float32 `toml:"max_acceleration" yaml:"max_acceleration"`
	MaxAirAcceleration float32 `toml:"max_air_acceleration" yaml:"max_air_acceleration"`
	// MaxGroundAngle is the steepest slope, in degrees, that still counts as ground.
	MaxGroundAngle float32 `toml:"max_ground_angle" yaml:"max_ground_angle"`
	// JumpHeight is the height reached by a jump from flat ground.
	JumpHeight float32 `toml:"jump_height" yaml:"jump_height"`
	// MaxSnapSpeed is the fastest speed at which the actor is still snapped back to the ground.
	MaxSnapSpeed float32 `toml:"max_snap_speed" yaml:"max_snap_speed"`
	// MaxFallSpeed is the terminal speed gravity accelerates the actor to.
	MaxFallSpeed float32 `toml:"max_fall_speed" yaml:"max_fall_speed"`
	// ProbeDistance is the length of the downward ground probe.
	ProbeDistance float32 `toml:"probe_distance" yaml:"probe_distance"`
	// ProbeMask selects which layers the ground probe may hit.
	ProbeMask LayerMask `toml:"probe_mask" yaml:"probe_mask"`
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:           game.DefaultMaxSpeed,
		MaxAcceleration:    game.DefaultMaxAcceleration,
		MaxAirAcceleration: game.DefaultMaxAirAcceleration,
		MaxGroundAngle:     game.DefaultMaxGroundAngle,
		JumpHeight:         game.DefaultJumpHeight,
		MaxSnapSpeed:       game.DefaultMaxSnapSpeed,
		MaxFallSpeed:       game.DefaultMaxFallSpeed,
		ProbeDistance:      game.DefaultProbeDistance,
		ProbeMask:          AllLayers,
	}
}

// Validate returns an error if any value of the config is not a real number. Values that are merely out
// of range are not an error, Normalize clamps them.
func (c Config) Validate() error {
	fields := []struct {
		name string
		val  float32
	}{
		{"max_speed", c.MaxSpeed},
		{"max_acceleration", c.MaxAcceleration},
		{"max_air_acceleration", c.MaxAirAcceleration},
		{"max_ground_angle", c.MaxGroundAngle},
		{"jump_height", c.JumpHeight},
		{"max_snap_speed", c.MaxSnapSpeed},
		{"max_fall_speed", c.MaxFallSpeed},
		{"probe_distance", c.ProbeDistance},
	}
	for _, f := range fields {
		if math32.IsNaN(f.val) || math32.IsInf(f.val, 0) {
			return oerror.New("locomotion: config value %s is not finite (%v)", f.name, f.val)
		}
	}
	return nil
}

// Normalize clamps every value of the config into its accepted range.
func (c Config) Normalize() Config {
	c.MaxSpeed = game.ClampFloat(c.MaxSpeed, 0, game.MaxSpeedLimit)
	c.MaxAcceleration = game.ClampFloat(c.MaxAcceleration, 0, game.MaxAccelerationLimit)
	c.MaxAirAcceleration = game.ClampFloat(c.MaxAirAcceleration, 0, game.MaxAccelerationLimit)
	c.MaxGroundAngle = game.ClampFloat(c.MaxGroundAngle, 0, game.MaxGroundAngleLimit)
	c.JumpHeight = game.ClampFloat(c.JumpHeight, 0, game.MaxJumpHeightLimit)
	c.MaxSnapSpeed = game.ClampFloat(c.MaxSnapSpeed, 0, game.MaxSnapSpeedLimit)
	c.MaxFallSpeed = game.ClampFloat(c.MaxFallSpeed, 0, game.MaxFallSpeedLimit)
	c.ProbeDistance = math32.Max(c.ProbeDistance, 0)
	return c
}

// MinGroundDotProduct returns the lowest dot product between the up axis and a contact normal for the
// contact to count as ground.
func (c Config) MinGroundDotProduct() float32 {
	return math32.Cos(mgl32.DegToRad(c.MaxGroundAngle))
}
