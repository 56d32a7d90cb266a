package locomotion

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/sasha-s/go-deadlock"
)

// Intent buffers player input between the frame cadence it is sampled at and the fixed step that
// consumes it. It is safe for one writer goroutine and the stepping goroutine to use concurrently.
type Intent struct {
	mu       deadlock.Mutex
	move     mgl32.Vec2
	space    InputSpace
	hasSpace bool

	jump     atomic.Bool
	stopJump atomic.Bool
}

// Apply records a frame of input. The move vector replaces the previous one, while jump edges stay
// pending until a step consumes them.
func (i *Intent) Apply(in Input) {
	move := in.Move
	if !game.IsFinite(mgl32.Vec3{move.X(), move.Y(), 0}) {
		move = mgl32.Vec2{}
	}

	i.mu.Lock()
	i.move = game.ClampMagnitude2(move, 1)
	if in.Space != nil {
		i.space, i.hasSpace = *in.Space, true
	} else {
		i.space, i.hasSpace = InputSpace{}, false
	}
	i.mu.Unlock()

	if in.JumpPressed {
		i.jump.Store(true)
	}
	if in.JumpReleased {
		i.stopJump.Store(true)
	}
}

// Move returns the last clamped move vector.
func (i *Intent) Move() mgl32.Vec2 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.move
}

func (i *Intent) movement() (mgl32.Vec2, InputSpace, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.move, i.space, i.hasSpace
}

// consumeJump returns true exactly once per jump press.
func (i *Intent) consumeJump() bool {
	return i.jump.Swap(false)
}

// consumeStopJump returns true exactly once per jump release.
func (i *Intent) consumeStopJump() bool {
	return i.stopJump.Swap(false)
}
