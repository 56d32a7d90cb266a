// Package world holds static terrain and the sphere bodies moving through it. It answers the ground
// probe of the locomotion controller and reports the contacts its bodies make each step.
package world

import (
	"log/slog"
	"sync/atomic"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/sasha-s/go-deadlock"
)

const (
	// ContactOffset is how far a body may hover above a surface and still be in contact with it.
	ContactOffset = float32(0.01)
	// depenetrationPasses bounds how often overlapping colliders are re-checked in a single step.
	depenetrationPasses = 4
)

var currentWorldId atomic.Uint64

// ColliderID identifies a collider within a world.
type ColliderID uint32

type World struct {
	id uint64

	colliders    *orderedmap.OrderedMap[ColliderID, Collider]
	nextCollider ColliderID
	bodies       []*Body

	logger *slog.Logger

	deadlock.RWMutex
}

func New(logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	id := currentWorldId.Add(1)
	return &World{
		id:        id,
		colliders: orderedmap.NewOrderedMap[ColliderID, Collider](),
		logger:    logger.With("world", id),
	}
}

// ID returns the process-unique ID of the world.
func (w *World) ID() uint64 {
	return w.id
}

// AddCollider adds a collider to the world and returns the ID it can be removed with.
func (w *World) AddCollider(c Collider) ColliderID {
	w.Lock()
	defer w.Unlock()

	w.nextCollider++
	w.colliders.Set(w.nextCollider, c)
	w.logger.Debug("added collider", "id", w.nextCollider, "layer", c.Layer(), "bounds", c.Bounds())
	return w.nextCollider
}

// RemoveCollider removes the collider with the ID passed, returning false if there was none.
func (w *World) RemoveCollider(id ColliderID) bool {
	w.Lock()
	defer w.Unlock()
	return w.colliders.Delete(id)
}

// Collider returns the collider with the ID passed.
func (w *World) Collider(id ColliderID) (Collider, bool) {
	w.RLock()
	defer w.RUnlock()
	return w.colliders.Get(id)
}

// ColliderCount returns the amount of colliders in the world.
func (w *World) ColliderCount() int {
	w.RLock()
	defer w.RUnlock()
	return w.colliders.Len()
}

// AddBody adds a sphere body to the world. It collides with every layer in mask.
func (w *World) AddBody(position mgl32.Vec3, radius float32, mask locomotion.LayerMask) *Body {
	w.Lock()
	defer w.Unlock()

	b := &Body{position: position, radius: radius, mask: mask, rotation: mgl32.QuatIdent()}
	w.bodies = append(w.bodies, b)
	return b
}

// RayCast returns the closest hit of the ray against colliders on a layer in mask. Colliders are tested
// in the order they were added, so ties resolve the same way every run.
func (w *World) RayCast(origin, direction mgl32.Vec3, maxDistance float32, mask locomotion.LayerMask) (locomotion.RayHit, bool) {
	dir, ok := game.SafeNormalize(direction)
	if !ok || maxDistance <= 0 {
		return locomotion.RayHit{}, false
	}

	w.RLock()
	defer w.RUnlock()

	var (
		closest locomotion.RayHit
		found   bool
	)
	for _, id := range w.colliders.Keys() {
		c, _ := w.colliders.Get(id)
		if !mask.Includes(c.Layer()) {
			continue
		}
		if hit, ok := c.RayCast(origin, dir, maxDistance); ok && (!found || hit.Distance < closest.Distance) {
			closest, found = hit, true
		}
	}
	return closest, found
}

// Step moves every body by its velocity, pushes it out of the colliders it ended up in and records the
// normals of all surfaces it touches. Velocity into a touched surface is removed.
func (w *World) Step(dt float32) {
	w.Lock()
	defer w.Unlock()

	for _, b := range w.bodies {
		b.position = b.position.Add(b.velocity.Mul(dt))
		b.contacts = b.contacts[:0]
		b.touched = b.touched[:0]

		for pass := 0; pass < depenetrationPasses; pass++ {
			if !w.resolveBody(b) {
				break
			}
		}
	}
}

// resolveBody runs a single depenetration pass for b. It returns true if b was moved.
func (w *World) resolveBody(b *Body) (moved bool) {
	for _, id := range w.colliders.Keys() {
		c, _ := w.colliders.Get(id)
		if !b.mask.Includes(c.Layer()) || game.AABBVectorDistance(c.Bounds(), b.position) > b.radius+ContactOffset {
			continue
		}
		normal, depth, ok := c.Penetration(b.position, b.radius)
		if !ok || depth < -ContactOffset {
			continue
		}

		b.touch(id, normal)
		if depth > 0 {
			b.position = b.position.Add(normal.Mul(depth))
			moved = true
		}
		if into := b.velocity.Dot(normal); into < 0 {
			b.velocity = b.velocity.Sub(normal.Mul(into))
		}
	}
	return moved
}
