package gravity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/locomotion"
)

var (
	_ locomotion.GravityProvider = Uniform{}
	_ locomotion.GravityProvider = Spherical{}
)

func TestUniformUpAxis(t *testing.T) {
	g, up := Earth().Gravity(mgl32.Vec3{100, -4, 3})
	if g != (mgl32.Vec3{0, -game.StandardGravity, 0}) || up != game.WorldUp {
		t.Fatalf("Earth().Gravity = %v, %v", g, up)
	}

	_, up = Uniform{Acceleration: mgl32.Vec3{-2, 0, 0}}.Gravity(mgl32.Vec3{})
	if up != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("sideways gravity up axis = %v", up)
	}

	_, up = Uniform{}.Gravity(mgl32.Vec3{})
	if up != game.WorldUp {
		t.Fatalf("zero gravity up axis = %v", up)
	}
}

func TestSphericalFalloff(t *testing.T) {
	planet := Spherical{Magnitude: 10, InnerRadius: 1, OuterRadius: 10, OuterFalloffRadius: 5}

	tests := []struct {
		name     string
		position mgl32.Vec3
		strength float32
		up       mgl32.Vec3
	}{
		{"inside core", mgl32.Vec3{0.5, 0, 0}, 0, mgl32.Vec3{1, 0, 0}},
		{"surface", mgl32.Vec3{0, 5, 0}, 10, mgl32.Vec3{0, 1, 0}},
		{"falloff", mgl32.Vec3{0, 0, -12.5}, 5, mgl32.Vec3{0, 0, -1}},
		{"out of range", mgl32.Vec3{20, 0, 0}, 0, mgl32.Vec3{1, 0, 0}},
		{"centre", mgl32.Vec3{}, 0, game.WorldUp},
	}
	for _, tt := range tests {
		g, up := planet.Gravity(tt.position)
		if !game.Float32ApproxEq(g.Len(), tt.strength) {
			t.Fatalf("%s: strength = %v, want %v", tt.name, g.Len(), tt.strength)
		}
		if !up.ApproxEqual(tt.up) {
			t.Fatalf("%s: up = %v, want %v", tt.name, up, tt.up)
		}
		if tt.strength > 0 && g.Dot(up) >= 0 {
			t.Fatalf("%s: gravity %v does not pull towards the centre", tt.name, g)
		}
	}
}
