package scenario

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/gravity"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/simulation"
)

const rampScenario = `
name: ramp
duration: 4s
terrain:
  - box:
      centre: [0, -0.5, 0]
      half_extents: [30, 0.5, 30]
  - layer: 1
    ramp:
      origin: [0, 0, 4]
      yaw: 0
      angle: 25
      run: 6
      width: 4
actors:
  - name: climber
    position: [0, 0.5, 0]
    radius: 0.5
    controller:
      max_speed: 4
    input:
      - at: 0s
        move: [0, 1]
  - name: walker
    position: [5, 0.5, 0]
    radius: 0.5
    collides_with: [0]
    input:
      - at: 0s
        move: [0, 1]
        camera_yaw: 0
      - at: 1s
        jump: true
`

func testOptions() simulation.Options {
	opts := simulation.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func TestParseScenario(t *testing.T) {
	s, err := Parse([]byte(rampScenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "ramp" || s.Duration != 4*time.Second || len(s.Terrain) != 2 || len(s.Actors) != 2 {
		t.Fatalf("unexpected scenario %+v", s)
	}
	if s.Terrain[1].Ramp == nil || s.Terrain[1].Layer != 1 {
		t.Fatalf("ramp not decoded: %+v", s.Terrain[1])
	}
	walker := s.Actors[1]
	if walker.Input[0].CameraYaw == nil || walker.Input[1].At != time.Second || !walker.Input[1].Jump {
		t.Fatalf("walker input not decoded: %+v", walker.Input)
	}
	if _, ok := s.GravityProvider().(gravity.Uniform); !ok {
		t.Fatalf("default gravity is %T", s.GravityProvider())
	}
}

func TestControllerOverridesKeepBase(t *testing.T) {
	s, err := Parse([]byte(rampScenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base := locomotion.DefaultConfig()
	base.JumpHeight = 2

	cfg, err := s.Actors[0].config(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxSpeed != 4 || cfg.JumpHeight != 2 || cfg.MaxGroundAngle != base.MaxGroundAngle {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg, _ := s.Actors[1].config(base); cfg != base {
		t.Fatalf("actor without overrides got %+v", cfg)
	}
}

func TestBuildAndRun(t *testing.T) {
	s, err := Parse([]byte(rampScenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := s.Build(locomotion.DefaultConfig(), testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.World().ColliderCount() != 2 || len(r.Actors()) != 2 {
		t.Fatalf("world has %d colliders and %d actors", r.World().ColliderCount(), len(r.Actors()))
	}
	if err := r.Run(context.Background(), s.Duration, 16*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	climber, walker := r.Actors()[0].Summary(), r.Actors()[1].Summary()
	if climber.PeakHeight < 1 {
		t.Fatalf("climber did not climb the ramp: %v", climber)
	}
	if walker.Jumps != 1 {
		t.Fatalf("walker jumps = %d, want 1", walker.Jumps)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"no duration":   "actors: [{name: a, radius: 1}]",
		"no actors":     "duration: 1s",
		"bad gravity":   "duration: 1s\ngravity: {type: flat}\nactors: [{name: a, radius: 1}]",
		"no radius":     "duration: 1s\nactors: [{name: a}]",
		"duplicate":     "duration: 1s\nactors: [{name: a, radius: 1}, {name: a, radius: 1}]",
		"empty terrain": "duration: 1s\nterrain: [{layer: 0}]\nactors: [{name: a, radius: 1}]",
		"not yaml":      "duration: [",
		"int duration":  "duration: 5\nactors: [{name: a, radius: 1}]",
	}
	for name, data := range tests {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestSphericalGravity(t *testing.T) {
	s, err := Parse([]byte(`
duration: 1s
gravity:
  type: spherical
  centre: [0, -20, 0]
  magnitude: 9.81
  inner_radius: 1
  outer_radius: 30
  outer_falloff_radius: 10
actors: [{name: a, radius: 0.5}]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, up := s.GravityProvider().Gravity(mgl32.Vec3{0, 0, 0})
	if !up.ApproxEqual(mgl32.Vec3{0, 1, 0}) || g.Y() >= 0 {
		t.Fatalf("gravity = %v, up = %v", g, up)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.yaml")
	if err := os.WriteFile(path, []byte(rampScenario), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
