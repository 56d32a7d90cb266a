package game

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		current, target, maxDelta, want float32
	}{
		{0, 5, 1, 1},
		{4.5, 5, 1, 5},
		{0, -5, 2, -2},
		{3, 3, 0, 3},
	}
	for _, tt := range tests {
		if got := MoveTowards(tt.current, tt.target, tt.maxDelta); got != tt.want {
			t.Fatalf("MoveTowards(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.maxDelta, got, tt.want)
		}
	}
}

func TestSafeNormalize(t *testing.T) {
	if _, ok := SafeNormalize(mgl32.Vec3{}); ok {
		t.Fatalf("zero vector normalized")
	}
	if _, ok := SafeNormalize(mgl32.Vec3{math32.NaN(), 0, 0}); ok {
		t.Fatalf("NaN vector normalized")
	}
	n, ok := SafeNormalize(mgl32.Vec3{0, 3, 4})
	if !ok || !Float32ApproxEq(n.Len(), 1) {
		t.Fatalf("SafeNormalize = %v, %v", n, ok)
	}
}

func TestProjectDirectionOnPlane(t *testing.T) {
	got := ProjectDirectionOnPlane(mgl32.Vec3{1, 1, 0}, WorldUp)
	if !got.ApproxEqual(mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("projection = %v", got)
	}
	if got := ProjectDirectionOnPlane(WorldUp, WorldUp); got != (mgl32.Vec3{}) {
		t.Fatalf("parallel projection = %v, want zero", got)
	}
}

func TestClampMagnitude2(t *testing.T) {
	if got := ClampMagnitude2(mgl32.Vec2{0.3, 0.4}, 1); got != (mgl32.Vec2{0.3, 0.4}) {
		t.Fatalf("short vector changed to %v", got)
	}
	if got := ClampMagnitude2(mgl32.Vec2{6, 8}, 1); !Float32ApproxEq(got.Len(), 1) {
		t.Fatalf("long vector clamped to length %v", got.Len())
	}
}

func TestLookRotation(t *testing.T) {
	q, ok := LookRotation(WorldRight, WorldUp)
	if !ok {
		t.Fatalf("LookRotation failed")
	}
	if f := Forward(q); !vecNear(f, WorldRight) {
		t.Fatalf("forward = %v, want %v", f, WorldRight)
	}
	if up := q.Rotate(WorldUp); !vecNear(up, WorldUp) {
		t.Fatalf("up = %v, want %v", up, WorldUp)
	}
	if _, ok := LookRotation(WorldUp, WorldUp); ok {
		t.Fatalf("LookRotation accepted forward parallel to up")
	}
}

func TestSlerpRotationShortestArc(t *testing.T) {
	to := mgl32.QuatRotate(mgl32.DegToRad(20), WorldUp)
	got := SlerpRotation(mgl32.QuatIdent(), to.Scale(-1), 0.5)
	if angle := AngleBetween(Forward(got), WorldForward); math32.Abs(angle-10) > 0.01 {
		t.Fatalf("halfway rotation is %v degrees, want 10", angle)
	}
}

func TestWrapDegrees(t *testing.T) {
	for in, want := range map[float32]float32{0: 0, 360: 0, -90: 270, 725: 5, 359.5: 359.5} {
		if got := WrapDegrees(in); !Float32ApproxEq(got, want) {
			t.Fatalf("WrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDirectionVector(t *testing.T) {
	if v := DirectionVector(0); !vecNear(v, WorldForward) {
		t.Fatalf("yaw 0 = %v", v)
	}
	if v := DirectionVector(90); !vecNear(v, WorldRight) {
		t.Fatalf("yaw 90 = %v", v)
	}
}

func TestRunningStats(t *testing.T) {
	var s RunningStats
	if s.Mean() != 0 || s.StandardDeviation() != 0 || s.Max() != 0 {
		t.Fatalf("empty stats not zero: %+v", s)
	}
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9, math.NaN()} {
		s.Add(v)
	}
	if s.Count() != 8 {
		t.Fatalf("count = %d, want 8", s.Count())
	}
	if math.Abs(s.Mean()-5) > 1e-12 {
		t.Fatalf("mean = %v", s.Mean())
	}
	if math.Abs(s.StandardDeviation()-2) > 1e-12 {
		t.Fatalf("standard deviation = %v", s.StandardDeviation())
	}
	if s.Max() != 9 {
		t.Fatalf("max = %v", s.Max())
	}

	var negative RunningStats
	negative.Add(-3)
	negative.Add(-1)
	if negative.Max() != -1 {
		t.Fatalf("max of negative samples = %v", negative.Max())
	}
}

// vecNear compares vectors by absolute distance, so components that should be zero tolerate float noise.
func vecNear(got, want mgl32.Vec3) bool {
	return got.Sub(want).Len() < 1e-5
}
