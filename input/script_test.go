package input

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/locomotion"
)

var _ locomotion.InputProvider = (*Script)(nil)

func yaw(deg float32) *float32 {
	return &deg
}

func TestScriptHoldsMoveUntilNextFrame(t *testing.T) {
	s := NewScript(
		Frame{At: time.Second, Move: mgl32.Vec2{0, -1}},
		Frame{At: 0, Move: mgl32.Vec2{0, 1}},
	)

	if in := s.Sample(500 * time.Millisecond); in.Move != (mgl32.Vec2{0, 1}) {
		t.Fatalf("move at 0.5s = %v", in.Move)
	}
	if in := s.Sample(1500 * time.Millisecond); in.Move != (mgl32.Vec2{0, -1}) {
		t.Fatalf("move at 1.5s = %v", in.Move)
	}
	if !s.Done() || s.Duration() != time.Second {
		t.Fatalf("Done() = %v, Duration() = %v", s.Done(), s.Duration())
	}
}

func TestScriptEdgesReportedOnce(t *testing.T) {
	s := NewScript(
		Frame{At: 100 * time.Millisecond, Jump: true},
		Frame{At: 110 * time.Millisecond, Release: true},
	)

	if in := s.Sample(50 * time.Millisecond); in.JumpPressed || in.JumpReleased {
		t.Fatalf("edge reported before its frame: %+v", in)
	}
	// Both frames fall between two samples.
	in := s.Sample(200 * time.Millisecond)
	if !in.JumpPressed || !in.JumpReleased {
		t.Fatalf("skipped edges lost: %+v", in)
	}
	if in := s.Sample(300 * time.Millisecond); in.JumpPressed || in.JumpReleased {
		t.Fatalf("edges reported twice: %+v", in)
	}
}

func TestScriptRestartsWhenTimeGoesBack(t *testing.T) {
	s := NewScript(Frame{At: 0, Jump: true})
	if !s.Sample(0).JumpPressed {
		t.Fatalf("first sample missed the press")
	}
	s.Sample(time.Second)
	if !s.Sample(0).JumpPressed {
		t.Fatalf("script did not restart")
	}
}

func TestCameraSpace(t *testing.T) {
	s := NewScript(Frame{At: 0, Move: mgl32.Vec2{0, 1}, CameraYaw: yaw(450)})
	in := s.Sample(0)
	if in.Space == nil {
		t.Fatalf("expected an input space")
	}
	if in.Space.Forward.Sub(mgl32.Vec3{1, 0, 0}).Len() > 1e-5 {
		t.Fatalf("forward = %v", in.Space.Forward)
	}
	if in.Space.Right.Sub(mgl32.Vec3{0, 0, -1}).Len() > 1e-5 {
		t.Fatalf("right = %v", in.Space.Right)
	}
	if s := CameraSpace(0); s.Right != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("right at yaw 0 = %v", s.Right)
	}
}
