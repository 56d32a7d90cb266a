package simulation

import (
	"fmt"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/locomotion/game"
)

// Summary describes the run of a single actor.
type Summary struct {
	Actor    string
	Steps    uint64
	Duration time.Duration

	FinalPosition mgl64.Vec3
	// Distance is the length of the path travelled, Displacement the straight line distance from the
	// start position.
	Distance     float64
	Displacement float64
	// PeakHeight is the highest the actor got above its start position, along the up axis.
	PeakHeight float64

	GroundedRatio float64
	Jumps         int

	MeanSpeed   float64
	SpeedStdDev float64
	MaxSpeed    float64

	Fingerprint uint64
}

// Summary returns the summary of everything the actor did so far.
func (a *Actor) Summary() Summary {
	s := Summary{
		Actor:         a.name,
		Steps:         uint64(a.speed.Count()),
		FinalPosition: a.last,
		Distance:      a.distance,
		Displacement:  a.last.Sub(a.start).Len(),
		PeakHeight:    a.peak,
		Jumps:         a.jumps,
		MeanSpeed:     a.speed.Mean(),
		SpeedStdDev:   a.speed.StandardDeviation(),
		MaxSpeed:      a.speed.Max(),
		Fingerprint:   a.Fingerprint(),
	}
	if last, ok := a.history.Last(); ok {
		s.Duration = last.Time
	}
	if s.Steps > 0 {
		s.GroundedRatio = float64(a.grounded) / float64(s.Steps)
	}
	return s
}

// Fields returns the values of the summary in display order.
func (s Summary) Fields() *orderedmap.OrderedMap[string, any] {
	fields := orderedmap.NewOrderedMap[string, any]()
	fields.Set("actor", s.Actor)
	fields.Set("steps", s.Steps)
	fields.Set("duration", s.Duration)
	fields.Set("position", fmt.Sprintf("(%.3f, %.3f, %.3f)", s.FinalPosition.X(), s.FinalPosition.Y(), s.FinalPosition.Z()))
	fields.Set("distance", game.Round64(s.Distance, 3))
	fields.Set("displacement", game.Round64(s.Displacement, 3))
	fields.Set("peakHeight", game.Round64(s.PeakHeight, 3))
	fields.Set("grounded", game.Round64(s.GroundedRatio, 3))
	fields.Set("jumps", s.Jumps)
	fields.Set("meanSpeed", game.Round64(s.MeanSpeed, 3))
	fields.Set("speedStdDev", game.Round64(s.SpeedStdDev, 3))
	fields.Set("maxSpeed", game.Round64(s.MaxSpeed, 3))
	fields.Set("fingerprint", fmt.Sprintf("%016x", s.Fingerprint))
	return fields
}

// String ...
func (s Summary) String() string {
	return OrderedMapToString(*s.Fields())
}

// LogAttrs returns the fields of the summary as alternating keys and values for slog.
func (s Summary) LogAttrs() []any {
	fields := s.Fields()
	attrs := make([]any, 0, fields.Len()*2)
	for _, key := range fields.Keys() {
		v, _ := fields.Get(key)
		attrs = append(attrs, key, v)
	}
	return attrs
}

// OrderedMapToString formats the map as "[key=value key=value]", keeping the order of the keys.
func OrderedMapToString(data orderedmap.OrderedMap[string, any]) string {
	dataString := "["
	count := data.Len()
	for _, key := range data.Keys() {
		v, _ := data.Get(key)
		dataString += fmt.Sprintf("%s=%v", key, v)

		count--
		if count > 0 {
			dataString += " "
		}
	}
	dataString += "]"

	return dataString
}
