package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// NormalizeEpsilon is the squared length under which a vector is treated as having no direction.
const NormalizeEpsilon = float32(1e-12)

var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldRight   = mgl32.Vec3{1, 0, 0}
	WorldForward = mgl32.Vec3{0, 0, 1}
)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// MoveTowards moves current towards target by at most maxDelta without overshooting it.
func MoveTowards(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// SafeNormalize returns the unit vector of v. If v is too short to have a direction, the zero
// vector and false are returned instead of a vector full of NaNs.
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	lenSqr := v.LenSqr()
	if lenSqr <= NormalizeEpsilon || math32.IsNaN(lenSqr) || math32.IsInf(lenSqr, 0) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / math32.Sqrt(lenSqr)), true
}

// ProjectOnPlane removes the component of v along the (unit) plane normal.
func ProjectOnPlane(v, normal mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(normal.Mul(v.Dot(normal)))
}

// ProjectDirectionOnPlane projects direction onto the plane defined by normal and normalizes the result.
// A direction parallel to the normal yields the zero vector; callers use that as a fallback trigger.
func ProjectDirectionOnPlane(direction, normal mgl32.Vec3) mgl32.Vec3 {
	projected, _ := SafeNormalize(ProjectOnPlane(direction, normal))
	return projected
}

// ClampMagnitude2 scales v down so that its length does not exceed max.
func ClampMagnitude2(v mgl32.Vec2, max float32) mgl32.Vec2 {
	lenSqr := v.Dot(v)
	if lenSqr <= max*max {
		return v
	}
	return v.Mul(max / math32.Sqrt(lenSqr))
}

// ClampedDot returns the dot product of a and b clamped to [-1, 1], safe to feed into Acos.
func ClampedDot(a, b mgl32.Vec3) float32 {
	return ClampFloat(a.Dot(b), -1, 1)
}

// AngleBetween returns the angle in degrees between a and b. Degenerate vectors yield 0.
func AngleBetween(a, b mgl32.Vec3) float32 {
	na, okA := SafeNormalize(a)
	nb, okB := SafeNormalize(b)
	if !okA || !okB {
		return 0
	}
	return mgl32.RadToDeg(math32.Acos(ClampedDot(na, nb)))
}

// LookRotation builds a rotation whose local +Z axis points along forward and whose local +Y axis
// is as close to up as possible. It returns false if forward is degenerate or parallel to up.
func LookRotation(forward, up mgl32.Vec3) (mgl32.Quat, bool) {
	f, ok := SafeNormalize(forward)
	if !ok {
		return mgl32.QuatIdent(), false
	}
	right, ok := SafeNormalize(up.Cross(f))
	if !ok {
		return mgl32.QuatIdent(), false
	}
	trueUp := f.Cross(right)
	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, trueUp, f).Mat4()).Normalize(), true
}

// SlerpRotation spherically interpolates from towards to by t along the shortest arc.
func SlerpRotation(from, to mgl32.Quat, t float32) mgl32.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl32.QuatSlerp(from, to, t).Normalize()
}

// Forward returns the local +Z axis of the rotation in world space.
func Forward(rotation mgl32.Quat) mgl32.Vec3 {
	return rotation.Rotate(WorldForward)
}

// WrapDegrees wraps an angle in degrees into [0, 360).
func WrapDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// DirectionVector returns the horizontal direction for a yaw in degrees, where a yaw of zero faces +Z and
// positive yaw turns towards +X.
func DirectionVector(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Sin(yawRad), 0, math32.Cos(yawRad)}
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// IsFinite reports whether every component of v is a real number.
func IsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}
