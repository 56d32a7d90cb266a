package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxAround returns a box of the given half extents centred on centre.
func BoxAround(centre, halfExtents mgl32.Vec3) cube.BBox {
	return cube.Box(
		centre.X()-halfExtents.X(), centre.Y()-halfExtents.Y(), centre.Z()-halfExtents.Z(),
		centre.X()+halfExtents.X(), centre.Y()+halfExtents.Y(), centre.Z()+halfExtents.Z(),
	)
}

// ClosestPointInBox returns the point in or on the box that is closest to v.
func ClosestPointInBox(bb cube.BBox, v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		ClampFloat(v.X(), bb.Min().X(), bb.Max().X()),
		ClampFloat(v.Y(), bb.Min().Y(), bb.Max().Y()),
		ClampFloat(v.Z(), bb.Min().Z(), bb.Max().Z()),
	}
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))
	return math32.Sqrt(x*x + y*y + z*z)
}

// FaceNormal returns the outward unit normal of a box face.
func FaceNormal(face cube.Face) mgl32.Vec3 {
	switch face {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}

// ExitNormal returns the normal of the box face closest to v, which lies inside the box, along with the
// distance to that face.
func ExitNormal(bb cube.BBox, v mgl32.Vec3) (mgl32.Vec3, float32) {
	normal, depth := mgl32.Vec3{}, float32(math32.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		if d := v[axis] - bb.Min()[axis]; d < depth {
			depth = d
			normal = mgl32.Vec3{}
			normal[axis] = -1
		}
		if d := bb.Max()[axis] - v[axis]; d < depth {
			depth = d
			normal = mgl32.Vec3{}
			normal[axis] = 1
		}
	}
	return normal, depth
}
