package locomotion

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

func normalAtAngle(deg float32) mgl32.Vec3 {
	rad := mgl32.DegToRad(deg)
	return mgl32.Vec3{math32.Sin(rad), math32.Cos(rad), 0}
}

func TestClassifyContact(t *testing.T) {
	minDot := DefaultConfig().MinGroundDotProduct()
	tests := []struct {
		name   string
		normal mgl32.Vec3
		want   ContactKind
	}{
		{"flat floor", game.WorldUp, ContactGround},
		{"gentle slope", normalAtAngle(30), ContactGround},
		{"steep slope", normalAtAngle(60), ContactSteep},
		{"wall", mgl32.Vec3{0, 0, 1}, ContactSteep},
		{"slight overhang", mgl32.Vec3{math32.Sqrt(1 - 0.005*0.005), -0.005, 0}, ContactSteep},
		{"overhang", normalAtAngle(120), ContactIgnored},
		{"ceiling", mgl32.Vec3{0, -1, 0}, ContactIgnored},
	}
	for _, tt := range tests {
		if got := classifyContact(game.WorldUp, tt.normal, minDot); got != tt.want {
			t.Fatalf("%s: classified as %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassificationIsMonotonic(t *testing.T) {
	minDot := DefaultConfig().MinGroundDotProduct()
	last := ContactGround
	for deg := float32(0); deg <= 180; deg += 0.5 {
		kind := classifyContact(game.WorldUp, normalAtAngle(deg), minDot)
		// Buckets are ordered ground, steep, ignored as the angle grows.
		if rank(kind) < rank(last) {
			t.Fatalf("classification went from %v back to %v at %v degrees", last, kind, deg)
		}
		last = kind
	}
	if last != ContactIgnored {
		t.Fatalf("ceiling not ignored")
	}
}

func rank(k ContactKind) int {
	switch k {
	case ContactGround:
		return 0
	case ContactSteep:
		return 1
	}
	return 2
}

func TestClassifyFollowsUpAxis(t *testing.T) {
	minDot := DefaultConfig().MinGroundDotProduct()
	up := mgl32.Vec3{1, 0, 0}
	if kind := classifyContact(up, mgl32.Vec3{1, 0, 0}, minDot); kind != ContactGround {
		t.Fatalf("surface facing the up axis classified as %v", kind)
	}
	if kind := classifyContact(up, game.WorldUp, minDot); kind != ContactSteep {
		t.Fatalf("world floor with sideways gravity classified as %v", kind)
	}
}

func TestContactsAccumulate(t *testing.T) {
	s := newState(mgl32.QuatIdent())
	minDot := DefaultConfig().MinGroundDotProduct()

	s.classify(normalAtAngle(10), minDot)
	s.classify(normalAtAngle(-10), minDot)
	s.classify(mgl32.Vec3{0, 0, 1}, minDot)
	s.classify(mgl32.Vec3{0, -1, 0}, minDot)

	if s.GroundContactCount != 2 || s.SteepContactCount != 1 {
		t.Fatalf("counts = %d ground, %d steep", s.GroundContactCount, s.SteepContactCount)
	}
	if !s.OnGround() || !s.OnSteep() {
		t.Fatalf("expected both ground and steep contact")
	}
	approxEqual(t, s.ContactNormal.X(), 0, 1e-6, "contact normal sum x")

	s.clearContacts()
	if s.OnGround() || s.OnSteep() || s.ContactNormal != (mgl32.Vec3{}) || s.SteepNormal != (mgl32.Vec3{}) {
		t.Fatalf("contacts not cleared: %+v", s)
	}
}
