package simulation

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/internal"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/utils"
	"github.com/oomph-ac/locomotion/world"
	"github.com/zeebo/xxh3"
)

// Sample is the state of an actor after a fixed step.
type Sample struct {
	Time     time.Duration
	Step     uint64
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Ground   locomotion.GroundState
	Jumping  bool
}

// Actor is a controller together with the world body it drives.
type Actor struct {
	name       string
	controller *locomotion.Controller
	body       *world.Body

	history *utils.CircularQueue[Sample]
	hash    *xxh3.Hasher

	start    mgl64.Vec3
	last     mgl64.Vec3
	distance float64
	peak     float64
	grounded int
	jumps    int
	speed    game.RunningStats
}

func newActor(name string, c *locomotion.Controller, body *world.Body, historySize int) *Actor {
	start := game.Vec32To64(body.Position())
	return &Actor{
		name:       name,
		controller: c,
		body:       body,
		history:    utils.NewCircularQueue[Sample](historySize),
		hash:       xxh3.New(),
		start:      start,
		last:       start,
	}
}

// Name ...
func (a *Actor) Name() string {
	return a.name
}

// Controller ...
func (a *Actor) Controller() *locomotion.Controller {
	return a.controller
}

// Body ...
func (a *Actor) Body() *world.Body {
	return a.body
}

// History returns the most recent samples of the actor, oldest first.
func (a *Actor) History() []Sample {
	samples := make([]Sample, 0, a.history.Len())
	for _, s := range a.history.All() {
		samples = append(samples, s)
	}
	return samples
}

// Fingerprint returns a hash of every sample recorded so far. Two runs of the same scenario produce the
// same fingerprint.
func (a *Actor) Fingerprint() uint64 {
	return a.hash.Sum64()
}

// record adds the state of the actor after its controller's last step.
func (a *Actor) record(now time.Duration) {
	res := a.controller.LastStep()
	s := Sample{
		Time:     now,
		Step:     res.Step,
		Position: a.body.Position(),
		Velocity: a.body.Velocity(),
		Ground:   res.Ground,
		Jumping:  res.Jumping,
	}
	_ = a.history.Append(s)
	a.write(s)

	pos := game.Vec32To64(s.Position)
	a.distance += pos.Sub(a.last).Len()
	a.last = pos
	a.peak = math.Max(a.peak, pos.Sub(a.start).Dot(game.Vec32To64(res.UpAxis)))
	if res.Ground.OnGround() {
		a.grounded++
	}
	if res.Jumped {
		a.jumps++
	}
	a.speed.Add(float64(s.Velocity.Len()))
}

func (a *Actor) write(s Sample) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)
	buf.Reset()

	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], s.Step)
	_, _ = buf.Write(scratch[:])
	for _, v := range [...]mgl32.Vec3{s.Position, s.Velocity} {
		for _, c := range v {
			binary.LittleEndian.PutUint32(scratch[:4], math.Float32bits(c))
			_, _ = buf.Write(scratch[:4])
		}
	}
	_, _ = buf.Write([]byte{byte(s.Ground)})
	_, _ = a.hash.Write(buf.Bytes())
}
