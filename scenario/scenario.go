// Package scenario reads simulation scenarios from YAML files.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/gravity"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/simulation"
	"github.com/oomph-ac/locomotion/world"
	"gopkg.in/yaml.v3"
)

type Scenario struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
	Gravity  Gravity       `yaml:"gravity"`
	Terrain  []Terrain     `yaml:"terrain"`
	Actors   []Actor       `yaml:"actors"`
}

type Gravity struct {
	// Type is "uniform" (the default) or "spherical".
	Type         string      `yaml:"type"`
	Acceleration *mgl32.Vec3 `yaml:"acceleration"`

	Centre             mgl32.Vec3 `yaml:"centre"`
	Magnitude          float32    `yaml:"magnitude"`
	InnerRadius        float32    `yaml:"inner_radius"`
	OuterRadius        float32    `yaml:"outer_radius"`
	OuterFalloffRadius float32    `yaml:"outer_falloff_radius"`
}

// Terrain is a single collider. Exactly one of Box and Ramp is set.
type Terrain struct {
	Layer locomotion.Layer `yaml:"layer"`
	Box   *Box             `yaml:"box"`
	Ramp  *Ramp            `yaml:"ramp"`
}

type Box struct {
	Centre      mgl32.Vec3 `yaml:"centre"`
	HalfExtents mgl32.Vec3 `yaml:"half_extents"`
}

type Ramp struct {
	Origin mgl32.Vec3 `yaml:"origin"`
	Yaw    float32    `yaml:"yaw"`
	Angle  float32    `yaml:"angle"`
	Run    float32    `yaml:"run"`
	Width  float32    `yaml:"width"`
}

type Actor struct {
	Name     string     `yaml:"name"`
	Position mgl32.Vec3 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
	// CollidesWith lists the layers the actor collides with. Empty means every layer.
	CollidesWith []locomotion.Layer `yaml:"collides_with"`
	// Controller overrides the base controller config for this actor. Only the keys present are changed.
	Controller yaml.Node `yaml:"controller"`
	Input      []Frame   `yaml:"input"`
}

type Frame struct {
	At        time.Duration `yaml:"at"`
	Move      mgl32.Vec2    `yaml:"move"`
	Jump      bool          `yaml:"jump"`
	Release   bool          `yaml:"release"`
	CameraYaw *float32      `yaml:"camera_yaw"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate returns an error describing the first problem found in the scenario.
func (s *Scenario) Validate() error {
	if s.Duration <= 0 {
		return oerror.New("scenario %q: duration must be positive", s.Name)
	}
	switch s.Gravity.Type {
	case "", "uniform", "spherical":
	default:
		return oerror.New("scenario %q: unknown gravity type %q", s.Name, s.Gravity.Type)
	}
	for i, t := range s.Terrain {
		if (t.Box == nil) == (t.Ramp == nil) {
			return oerror.New("scenario %q: terrain %d must be exactly one of box or ramp", s.Name, i)
		}
	}
	if len(s.Actors) == 0 {
		return oerror.New("scenario %q: no actors", s.Name)
	}
	names := make(map[string]struct{}, len(s.Actors))
	for _, a := range s.Actors {
		if a.Name == "" {
			return oerror.New("scenario %q: actor without a name", s.Name)
		}
		if _, ok := names[a.Name]; ok {
			return oerror.New("scenario %q: duplicate actor %q", s.Name, a.Name)
		}
		names[a.Name] = struct{}{}
		if a.Radius <= 0 {
			return oerror.New("scenario %q: actor %q needs a positive radius", s.Name, a.Name)
		}
	}
	return nil
}

// GravityProvider returns the gravity source described by the scenario.
func (s *Scenario) GravityProvider() locomotion.GravityProvider {
	g := s.Gravity
	if g.Type == "spherical" {
		return gravity.Spherical{
			Centre:             g.Centre,
			Magnitude:          g.Magnitude,
			InnerRadius:        g.InnerRadius,
			OuterRadius:        g.OuterRadius,
			OuterFalloffRadius: g.OuterFalloffRadius,
		}
	}
	if g.Acceleration != nil {
		return gravity.Uniform{Acceleration: *g.Acceleration}
	}
	return gravity.Earth()
}

// Build creates a world with the terrain of the scenario and a runner with its actors. base is the
// controller config actors start from before their own overrides are applied.
func (s *Scenario) Build(base locomotion.Config, opts simulation.Options) (*simulation.Runner, error) {
	w := world.New(opts.Logger)
	for i, t := range s.Terrain {
		c, err := t.collider()
		if err != nil {
			return nil, fmt.Errorf("terrain %d: %w", i, err)
		}
		w.AddCollider(c)
	}

	r, err := simulation.NewRunner(w, opts)
	if err != nil {
		return nil, err
	}
	g := s.GravityProvider()
	for _, a := range s.Actors {
		cfg, err := a.config(base)
		if err != nil {
			return nil, err
		}
		mask := locomotion.AllLayers
		if len(a.CollidesWith) > 0 {
			mask = locomotion.MaskOf(a.CollidesWith...)
		}

		body := w.AddBody(a.Position, a.Radius, mask)
		providers := locomotion.Providers{Gravity: g, Input: a.script()}
		if _, err := r.AddActor(a.Name, body, cfg, providers); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (t Terrain) collider() (world.Collider, error) {
	if t.Box != nil {
		return world.NewBox(t.Box.Centre, t.Box.HalfExtents, t.Layer), nil
	}
	r := t.Ramp
	return world.NewRamp(r.Origin, r.Yaw, r.Angle, r.Run, r.Width, t.Layer)
}

func (a Actor) config(base locomotion.Config) (locomotion.Config, error) {
	if a.Controller.IsZero() {
		return base, nil
	}
	if err := a.Controller.Decode(&base); err != nil {
		return base, fmt.Errorf("actor %q controller: %w", a.Name, err)
	}
	return base, nil
}

func (a Actor) script() *input.Script {
	frames := make([]input.Frame, 0, len(a.Input))
	for _, f := range a.Input {
		frames = append(frames, input.Frame{At: f.At, Move: f.Move, Jump: f.Jump, Release: f.Release, CameraYaw: f.CameraYaw})
	}
	return input.NewScript(frames...)
}
