// Package input provides scripted player input for driving controllers without a player.
package input

import (
	"cmp"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/sasha-s/go-deadlock"
)

// Frame is the input held from At until the next frame of a script.
type Frame struct {
	At   time.Duration
	Move mgl32.Vec2
	// Jump presses the jump button at the start of the frame, Release lets go of it.
	Jump    bool
	Release bool
	// CameraYaw, if set, is the yaw in degrees of the camera the move vector is relative to.
	CameraYaw *float32
}

// Script replays a timeline of frames. Press and release edges are reported once, on the first sample at
// or after the frame they belong to, even if the sampling skips over the frame entirely.
type Script struct {
	mu     deadlock.Mutex
	frames []Frame
	next   int
	last   time.Duration
}

// NewScript returns a script playing the frames passed, ordered by time.
func NewScript(frames ...Frame) *Script {
	frames = slices.Clone(frames)
	slices.SortStableFunc(frames, func(a, b Frame) int {
		return cmp.Compare(a.At, b.At)
	})
	return &Script{frames: frames}
}

// Sample returns the input at now. Sampling at a time before the previous sample restarts the script.
func (s *Script) Sample(now time.Duration) locomotion.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now < s.last {
		s.next = 0
	}
	s.last = now

	var in locomotion.Input
	for s.next < len(s.frames) && s.frames[s.next].At <= now {
		f := s.frames[s.next]
		in.JumpPressed = in.JumpPressed || f.Jump
		in.JumpReleased = in.JumpReleased || f.Release
		s.next++
	}
	if s.next == 0 {
		return in
	}

	current := s.frames[s.next-1]
	in.Move = current.Move
	if current.CameraYaw != nil {
		in.Space = CameraSpace(*current.CameraYaw)
	}
	return in
}

// Done returns true once every frame of the script was sampled.
func (s *Script) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next >= len(s.frames)
}

// Duration returns the time of the last frame.
func (s *Script) Duration() time.Duration {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1].At
}

// CameraSpace returns the input space of a level camera looking along yaw degrees.
func CameraSpace(yaw float32) *locomotion.InputSpace {
	forward := game.DirectionVector(game.WrapDegrees(yaw))
	return &locomotion.InputSpace{
		Right:   game.WorldUp.Cross(forward),
		Forward: forward,
	}
}
