// Package gravity provides the gravity sources a locomotion controller can be driven by.
package gravity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// Uniform is gravity with the same strength and direction everywhere.
type Uniform struct {
	Acceleration mgl32.Vec3
}

// Earth returns uniform gravity pulling down the world Y axis with standard strength.
func Earth() Uniform {
	return Uniform{Acceleration: mgl32.Vec3{0, -game.StandardGravity, 0}}
}

// Gravity ...
func (u Uniform) Gravity(mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	up, ok := game.SafeNormalize(u.Acceleration.Mul(-1))
	if !ok {
		up = game.WorldUp
	}
	return u.Acceleration, up
}
