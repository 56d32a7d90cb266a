package locomotion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
)

// Options define controller behaviour that is not part of the actor tuning.
type Options struct {
	// Logger receives debug traces of jumps and snaps. slog.Default() is used when nil.
	Logger *slog.Logger
	// OnPhase, if set, is called as the step enters each phase.
	OnPhase func(step uint64, phase Phase)
}

// Controller drives the rigid body of a single actor. Contacts are fed in through OnContact between
// steps, intent through ApplyInput or Update, and Advance runs one fixed step.
type Controller struct {
	body      RigidBody
	providers Providers
	opts      Options
	log       *slog.Logger

	cfg          Config
	minGroundDot float32

	intent Intent
	state  State

	steps    uint64
	stepping bool
	last     StepResult
}

// New creates a controller for body. The config is validated and normalized the same way SetConfig does.
func New(body RigidBody, cfg Config, providers Providers, opts Options) (*Controller, error) {
	assert.IsTrue(body != nil, "locomotion: controller requires a rigid body")
	if providers.Gravity == nil {
		providers.Gravity = uniformGravity{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Controller{
		body:      body,
		providers: providers,
		opts:      opts,
		log:       opts.Logger,
		state:     newState(body.Rotation()),
	}
	if err := c.SetConfig(cfg); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	_, up := providers.Gravity.Gravity(body.Position())
	c.state.UpAxis = upAxisOf(mgl32.Vec3{}, up)
	c.state.Rotation = validRotation(c.state.Rotation)
	c.last = StepResult{UpAxis: c.state.UpAxis, ContactNormal: c.state.UpAxis, Rotation: c.state.Rotation}
	return c, nil
}

// SetConfig validates and normalizes cfg, then applies it together with the derived ground threshold.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg.Normalize()
	c.minGroundDot = c.cfg.MinGroundDotProduct()
	return nil
}

// Config returns the normalized config currently in use.
func (c *Controller) Config() Config {
	return c.cfg
}

// MinGroundDotProduct returns the ground threshold derived from the current config.
func (c *Controller) MinGroundDotProduct() float32 {
	return c.minGroundDot
}

// OnContact classifies a contact normal reported by the collision stage for the next step. Normals
// that are not finite or have no length are ignored.
func (c *Controller) OnContact(normal mgl32.Vec3) ContactKind {
	if !game.IsFinite(normal) {
		return ContactIgnored
	}
	n, ok := game.SafeNormalize(normal)
	if !ok {
		return ContactIgnored
	}
	return c.state.classify(n, c.minGroundDot)
}

// OnContacts classifies every normal passed.
func (c *Controller) OnContacts(normals []mgl32.Vec3) {
	for _, n := range normals {
		c.OnContact(n)
	}
}

// ApplyInput records a frame of player intent. It may be called from a different goroutine than Advance.
func (c *Controller) ApplyInput(in Input) {
	c.intent.Apply(in)
}

// Update samples the input provider, if any, and records the result. It is meant to run once per frame.
func (c *Controller) Update(now time.Duration) {
	if c.providers.Input == nil {
		return
	}
	c.intent.Apply(c.providers.Input.Sample(now))
}

// Intent returns the intent buffer of the controller.
func (c *Controller) Intent() *Intent {
	return &c.intent
}

// Advance runs a single fixed step of dt seconds. Accumulated contacts are always cleared when it
// returns, even if dt is unusable and nothing was simulated.
func (c *Controller) Advance(dt float32) (result StepResult) {
	assert.IsTrue(!c.stepping, "locomotion: re-entrant step (step %d)", c.steps)
	c.stepping = true
	c.steps++
	step := c.steps
	result.Step = step

	defer func() {
		c.enter(step, PhaseResetAccumulators)
		c.state.clearContacts()
		c.stepping = false
	}()

	c.enter(step, PhaseAccumulateContacts)
	if dt <= 0 || math32.IsNaN(dt) || math32.IsInf(dt, 0) {
		c.log.Debug("step skipped", "step", step, "dt", dt)
		result = c.last
		result.Step, result.Skipped = step, true
		result.Jumped, result.StoppedJump, result.GravityApplied = false, false, false
		return result
	}

	s := &c.state
	gravity, up := c.providers.Gravity.Gravity(c.body.Position())
	if !game.IsFinite(gravity) {
		gravity = mgl32.Vec3{}
	}
	s.UpAxis = upAxisOf(gravity, up)
	s.Velocity = c.body.Velocity()
	if !game.IsFinite(s.Velocity) {
		s.Velocity = mgl32.Vec3{}
	}
	s.Rotation = validRotation(c.body.Rotation())
	c.consumeIntent()

	c.enter(step, PhaseResolveGround)
	result.Ground = c.resolveGround()
	result.OnSteep = s.OnSteep()

	c.enter(step, PhasePlanVelocity)
	c.planHorizontalVelocity(s.DesiredVelocity, s.ContactNormal, s.RightAxis, s.ForwardAxis, s.OnGround(), dt)

	c.enter(step, PhaseJump)
	result.Jumped = c.tryJump(gravity)

	c.enter(step, PhaseIntegrateGravity)
	result.GravityApplied = c.integrateGravity(gravity, dt)

	c.enter(step, PhaseStopJumpCheck)
	result.StoppedJump = c.tryStopJump()

	c.enter(step, PhaseSmoothOrientation)
	s.Rotation = c.updateFacing(s.Velocity, s.ContactNormal, game.Forward(s.Rotation))

	c.enter(step, PhaseCommit)
	c.body.SetVelocity(s.Velocity)
	c.body.SetRotation(s.Rotation)

	result.ContactNormal = s.ContactNormal
	result.UpAxis = s.UpAxis
	result.Velocity = s.Velocity
	result.Rotation = s.Rotation
	result.FallVelocity = s.FallVelocity
	result.Jumping = s.Jumping
	c.last = result
	return result
}

// consumeIntent turns the buffered intent into the desired velocity and input axes of this step and
// moves pending jump edges into the step state.
func (c *Controller) consumeIntent() {
	s := &c.state
	move, space, hasSpace := c.intent.movement()

	right, forward := game.WorldRight, game.WorldForward
	if hasSpace {
		right, forward = space.Right, space.Forward
	}
	s.RightAxis = game.ProjectDirectionOnPlane(right, s.UpAxis)
	s.ForwardAxis = game.ProjectDirectionOnPlane(forward, s.UpAxis)
	s.DesiredVelocity = mgl32.Vec3{move.X(), 0, move.Y()}.Mul(c.cfg.MaxSpeed)

	if c.intent.consumeJump() {
		s.DesiredJump = true
	}
	if c.intent.consumeStopJump() {
		s.StopJump = true
	}
}

func (c *Controller) enter(step uint64, phase Phase) {
	if c.opts.OnPhase != nil {
		c.opts.OnPhase(step, phase)
	}
}

// Grounded returns true if the actor was on the ground during the last step.
func (c *Controller) Grounded() bool {
	return c.last.Ground.OnGround()
}

// OnSteep returns true if the actor touched a steep surface during the last step.
func (c *Controller) OnSteep() bool {
	return c.last.OnSteep
}

// Jumping returns true from the start of a jump until the actor has landed again.
func (c *Controller) Jumping() bool {
	return c.state.Jumping
}

// Velocity returns the velocity committed to the body by the last step.
func (c *Controller) Velocity() mgl32.Vec3 {
	return c.state.Velocity
}

// Rotation returns the rotation committed to the body by the last step.
func (c *Controller) Rotation() mgl32.Quat {
	return c.state.Rotation
}

// ContactNormal returns the ground normal resolved by the last step, or the up axis if airborne.
func (c *Controller) ContactNormal() mgl32.Vec3 {
	return c.last.ContactNormal
}

// UpAxis returns the up axis used by the last step.
func (c *Controller) UpAxis() mgl32.Vec3 {
	return c.state.UpAxis
}

// LastStep returns the result of the last step.
func (c *Controller) LastStep() StepResult {
	return c.last
}

// Steps returns the amount of steps run so far.
func (c *Controller) Steps() uint64 {
	return c.steps
}

// State returns a copy of the controller state.
func (c *Controller) State() State {
	return c.state
}

// Body returns the rigid body driven by the controller.
func (c *Controller) Body() RigidBody {
	return c.body
}

// upAxisOf returns the normalized up axis supplied by a gravity provider, falling back to the inverse
// gravity direction and finally to world up.
func upAxisOf(gravity, up mgl32.Vec3) mgl32.Vec3 {
	if n, ok := game.SafeNormalize(up); ok {
		return n
	}
	if n, ok := game.SafeNormalize(gravity.Mul(-1)); ok {
		return n
	}
	return game.WorldUp
}

// validRotation normalizes q, replacing rotations without a usable length by the identity.
func validRotation(q mgl32.Quat) mgl32.Quat {
	lenSqr := q.Dot(q)
	if lenSqr <= game.NormalizeEpsilon || math32.IsNaN(lenSqr) || math32.IsInf(lenSqr, 0) {
		return mgl32.QuatIdent()
	}
	return q.Normalize()
}

type uniformGravity struct{}

func (uniformGravity) Gravity(mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	return mgl32.Vec3{0, -game.StandardGravity, 0}, game.WorldUp
}
