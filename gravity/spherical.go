package gravity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// Spherical pulls towards a centre point, like a small planet. Inside InnerRadius there is no gravity,
// between InnerRadius and OuterRadius it has full strength and beyond OuterRadius it fades out linearly
// over OuterFalloffRadius.
type Spherical struct {
	Centre    mgl32.Vec3
	Magnitude float32

	InnerRadius        float32
	OuterRadius        float32
	OuterFalloffRadius float32
}

// Gravity returns the acceleration towards the centre and the up axis pointing away from it. The up axis
// stays valid where gravity fades out, so an actor floating far away still has an orientation.
func (s Spherical) Gravity(position mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	offset := position.Sub(s.Centre)
	up, ok := game.SafeNormalize(offset)
	if !ok {
		return mgl32.Vec3{}, game.WorldUp
	}

	distance := offset.Len()
	if distance <= s.InnerRadius {
		return mgl32.Vec3{}, up
	}

	strength := s.Magnitude
	if distance > s.OuterRadius {
		if distance >= s.OuterRadius+s.OuterFalloffRadius {
			return mgl32.Vec3{}, up
		}
		strength *= 1 - (distance-s.OuterRadius)/s.OuterFalloffRadius
	}
	return up.Mul(-strength), up
}
