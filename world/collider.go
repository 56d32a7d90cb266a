package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/oerror"
)

// Collider is a piece of static terrain.
type Collider interface {
	// Layer returns the layer the collider is part of.
	Layer() locomotion.Layer
	// Bounds returns a box enclosing the collider.
	Bounds() cube.BBox
	// RayCast intersects the segment from origin along the unit direction up to maxDistance.
	RayCast(origin, direction mgl32.Vec3, maxDistance float32) (locomotion.RayHit, bool)
	// Penetration returns the normal pushing a sphere at centre out of the collider and the depth the
	// sphere of the radius passed sinks into it. A negative depth means the sphere is that far away.
	Penetration(centre mgl32.Vec3, radius float32) (normal mgl32.Vec3, depth float32, ok bool)
}

// BoxCollider is an axis aligned box.
type BoxCollider struct {
	BBox cube.BBox
	L    locomotion.Layer
}

// NewBox returns a box collider centred on centre.
func NewBox(centre, halfExtents mgl32.Vec3, layer locomotion.Layer) *BoxCollider {
	return &BoxCollider{BBox: game.BoxAround(centre, halfExtents), L: layer}
}

// Layer ...
func (b *BoxCollider) Layer() locomotion.Layer {
	return b.L
}

// Bounds ...
func (b *BoxCollider) Bounds() cube.BBox {
	return b.BBox
}

// RayCast ...
func (b *BoxCollider) RayCast(origin, direction mgl32.Vec3, maxDistance float32) (locomotion.RayHit, bool) {
	if b.BBox.Vec3Within(origin) {
		return locomotion.RayHit{}, false
	}
	result, ok := trace.BBoxIntercept(b.BBox, origin, origin.Add(direction.Mul(maxDistance)))
	if !ok {
		return locomotion.RayHit{}, false
	}
	point := result.Position()
	return locomotion.RayHit{
		Point:    point,
		Normal:   game.FaceNormal(result.Face()),
		Distance: point.Sub(origin).Len(),
	}, true
}

// Penetration ...
func (b *BoxCollider) Penetration(centre mgl32.Vec3, radius float32) (mgl32.Vec3, float32, bool) {
	closest := game.ClosestPointInBox(b.BBox, centre)
	offset := centre.Sub(closest)
	if n, ok := game.SafeNormalize(offset); ok {
		return n, radius - offset.Len(), true
	}
	// The centre is inside the box: push out through the nearest face.
	normal, depth := game.ExitNormal(b.BBox, centre)
	return normal, radius + depth, true
}

// SlopeCollider is a rectangular plane patch spanned by two perpendicular edges from a corner. It only
// collides from the side its normal faces, which always has a non-negative Y component.
type SlopeCollider struct {
	origin, u, v mgl32.Vec3
	normal       mgl32.Vec3
	layer        locomotion.Layer
}

// NewSlope returns a slope with the corner origin and the edges u and v. The edges must be perpendicular
// and have a length.
func NewSlope(origin, u, v mgl32.Vec3, layer locomotion.Layer) (*SlopeCollider, error) {
	if u.LenSqr() <= game.NormalizeEpsilon || v.LenSqr() <= game.NormalizeEpsilon {
		return nil, oerror.New("world: slope edges %v and %v must not be zero", u, v)
	}
	if math32.Abs(u.Normalize().Dot(v.Normalize())) > 1e-3 {
		return nil, oerror.New("world: slope edges %v and %v are not perpendicular", u, v)
	}
	normal, ok := game.SafeNormalize(u.Cross(v))
	if !ok {
		return nil, oerror.New("world: slope edges %v and %v are parallel", u, v)
	}
	if normal.Y() < 0 {
		normal = normal.Mul(-1)
	}
	return &SlopeCollider{origin: origin, u: u, v: v, normal: normal, layer: layer}, nil
}

// NewRamp returns a slope of the given width rising at angle degrees over a horizontal run. It starts at
// origin and climbs in the direction of yaw, which is measured like game.DirectionVector.
func NewRamp(origin mgl32.Vec3, yaw, angle, run, width float32, layer locomotion.Layer) (*SlopeCollider, error) {
	forward := game.DirectionVector(yaw)
	right := game.WorldUp.Cross(forward)
	rise := run * math32.Tan(mgl32.DegToRad(angle))
	u := forward.Mul(run).Add(game.WorldUp.Mul(rise))
	return NewSlope(origin.Sub(right.Mul(width/2)), u, right.Mul(width), layer)
}

// Normal returns the unit normal of the slope surface.
func (s *SlopeCollider) Normal() mgl32.Vec3 {
	return s.normal
}

// Layer ...
func (s *SlopeCollider) Layer() locomotion.Layer {
	return s.layer
}

// Bounds ...
func (s *SlopeCollider) Bounds() cube.BBox {
	corners := [4]mgl32.Vec3{s.origin, s.origin.Add(s.u), s.origin.Add(s.v), s.origin.Add(s.u).Add(s.v)}
	minV, maxV := corners[0], corners[0]
	for _, c := range corners[1:] {
		for i := 0; i < 3; i++ {
			minV[i] = math32.Min(minV[i], c[i])
			maxV[i] = math32.Max(maxV[i], c[i])
		}
	}
	return cube.Box(minV.X(), minV.Y(), minV.Z(), maxV.X(), maxV.Y(), maxV.Z())
}

// local returns the coordinates of p along both edges, where [0, 1] is on the patch.
func (s *SlopeCollider) local(p mgl32.Vec3) (float32, float32) {
	rel := p.Sub(s.origin)
	return rel.Dot(s.u) / s.u.LenSqr(), rel.Dot(s.v) / s.v.LenSqr()
}

// RayCast ...
func (s *SlopeCollider) RayCast(origin, direction mgl32.Vec3, maxDistance float32) (locomotion.RayHit, bool) {
	denom := direction.Dot(s.normal)
	if denom >= -game.NormalizeEpsilon {
		return locomotion.RayHit{}, false
	}
	distance := s.origin.Sub(origin).Dot(s.normal) / denom
	if distance < 0 || distance > maxDistance {
		return locomotion.RayHit{}, false
	}
	point := origin.Add(direction.Mul(distance))
	if a, b := s.local(point); a < 0 || a > 1 || b < 0 || b > 1 {
		return locomotion.RayHit{}, false
	}
	return locomotion.RayHit{Point: point, Normal: s.normal, Distance: distance}, true
}

// Penetration ...
func (s *SlopeCollider) Penetration(centre mgl32.Vec3, radius float32) (mgl32.Vec3, float32, bool) {
	a, b := s.local(centre)
	height := centre.Sub(s.origin).Dot(s.normal)
	if a >= 0 && a <= 1 && b >= 0 && b <= 1 {
		// Spheres that passed through the patch are left alone.
		if height < -radius {
			return mgl32.Vec3{}, 0, false
		}
		return s.normal, radius - height, true
	}
	if height < 0 {
		return mgl32.Vec3{}, 0, false
	}

	closest := s.origin.Add(s.u.Mul(game.ClampFloat(a, 0, 1))).Add(s.v.Mul(game.ClampFloat(b, 0, 1)))
	offset := centre.Sub(closest)
	n, ok := game.SafeNormalize(offset)
	if !ok {
		return s.normal, radius, true
	}
	return n, radius - offset.Len(), true
}
