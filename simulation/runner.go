// Package simulation steps locomotion controllers through a world at a fixed rate, independent of the
// rate frames are produced at, and records what the actors did.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/world"
)

// Options configure a Runner.
type Options struct {
	// TickRate is the amount of fixed steps per second.
	TickRate int
	// MaxCatchUpSteps caps the steps run for a single frame. Time beyond that is dropped so a long frame
	// does not stall the next ones.
	MaxCatchUpSteps int
	// HistorySize is the amount of samples kept per actor.
	HistorySize int
	Logger      *slog.Logger
}

// DefaultOptions returns options stepping at 50Hz.
func DefaultOptions() Options {
	return Options{TickRate: 50, MaxCatchUpSteps: 5, HistorySize: 256}
}

// Runner owns a world and the actors in it.
type Runner struct {
	world  *world.World
	actors []*Actor

	opts         Options
	log          *slog.Logger
	dt           float32
	stepDuration time.Duration

	now         time.Duration
	accumulator time.Duration
	steps       uint64
	dropped     time.Duration
}

// NewRunner returns a runner for the world passed.
func NewRunner(w *world.World, opts Options) (*Runner, error) {
	if opts.TickRate <= 0 {
		return nil, oerror.New("simulation: tick rate must be positive, got %d", opts.TickRate)
	}
	if opts.MaxCatchUpSteps <= 0 {
		opts.MaxCatchUpSteps = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{
		world:        w,
		opts:         opts,
		log:          opts.Logger,
		dt:           1 / float32(opts.TickRate),
		stepDuration: time.Second / time.Duration(opts.TickRate),
	}, nil
}

// AddActor creates a controller for body and adds it to the runner. The world is used as the spatial query
// of the controller unless providers has one set. providers.Input is sampled every frame.
func (r *Runner) AddActor(name string, body *world.Body, cfg locomotion.Config, providers locomotion.Providers) (*Actor, error) {
	if providers.Space == nil {
		providers.Space = r.world
	}
	c, err := locomotion.New(body, cfg, providers, locomotion.Options{Logger: r.log.With("actor", name)})
	if err != nil {
		return nil, fmt.Errorf("add actor %s: %w", name, err)
	}
	a := newActor(name, c, body, r.opts.HistorySize)
	r.actors = append(r.actors, a)
	return a, nil
}

// Actors returns the actors of the runner in the order they were added.
func (r *Runner) Actors() []*Actor {
	return r.actors
}

// World ...
func (r *Runner) World() *world.World {
	return r.world
}

// Now returns the simulated time passed.
func (r *Runner) Now() time.Duration {
	return r.now
}

// Steps returns the amount of fixed steps run.
func (r *Runner) Steps() uint64 {
	return r.steps
}

// Dropped returns the time that was discarded because frames took too long.
func (r *Runner) Dropped() time.Duration {
	return r.dropped
}

// Frame advances the simulation by elapsed time. Input is sampled once, then as many fixed steps run as
// fit in the accumulated time, up to MaxCatchUpSteps. It returns the amount of steps run.
func (r *Runner) Frame(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	r.now += elapsed
	for _, a := range r.actors {
		a.controller.Update(r.now)
	}

	r.accumulator += elapsed
	steps := 0
	for r.accumulator >= r.stepDuration && steps < r.opts.MaxCatchUpSteps {
		r.step()
		r.accumulator -= r.stepDuration
		steps++
	}
	if r.accumulator >= r.stepDuration {
		excess := r.accumulator - r.accumulator%r.stepDuration
		r.dropped += excess
		r.accumulator -= excess
		r.log.Debug("simulation falling behind, dropped time", "dropped", excess, "steps", steps)
	}
	return steps
}

// step runs a single fixed step: every controller advances, the world moves the bodies and the contacts
// found are handed to the controllers for the next step.
func (r *Runner) step() {
	if r.steps == 0 {
		// Bodies placed on the ground start out grounded.
		r.world.Step(0)
		r.feedContacts()
	}
	r.steps++

	for _, a := range r.actors {
		a.controller.Advance(r.dt)
	}
	r.world.Step(r.dt)
	r.feedContacts()

	stepTime := time.Duration(r.steps) * r.stepDuration
	for _, a := range r.actors {
		a.record(stepTime)
	}
}

func (r *Runner) feedContacts() {
	for _, a := range r.actors {
		a.controller.OnContacts(a.body.Contacts())
	}
}

// Run calls Frame with frame sized increments until duration of simulated time has passed or the context
// is cancelled.
func (r *Runner) Run(ctx context.Context, duration, frame time.Duration) error {
	if frame <= 0 {
		return oerror.New("simulation: frame time must be positive, got %v", frame)
	}
	for r.now < duration {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Frame(min(frame, duration-r.now))
	}
	return nil
}

// Summaries returns a summary for every actor.
func (r *Runner) Summaries() []Summary {
	summaries := make([]Summary, 0, len(r.actors))
	for _, a := range r.actors {
		summaries = append(summaries, a.Summary())
	}
	return summaries
}
