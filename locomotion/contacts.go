package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// ContactKind is the bucket a contact normal is classified into.
type ContactKind uint8

const (
	ContactIgnored ContactKind = iota
	ContactGround
	ContactSteep
)

func (k ContactKind) String() string {
	switch k {
	case ContactGround:
		return "ground"
	case ContactSteep:
		return "steep"
	default:
		return "ignored"
	}
}

// classifyContact decides which bucket a unit contact normal falls into for the given up axis.
func classifyContact(upAxis, normal mgl32.Vec3, minGroundDot float32) ContactKind {
	upDot := upAxis.Dot(normal)
	if upDot >= minGroundDot {
		return ContactGround
	} else if upDot > game.SteepContactThreshold {
		return ContactSteep
	}
	return ContactIgnored
}

// classify adds the normal to the bucket it belongs to. Normalization of the sums is left to ground
// resolution, so the order contacts arrive in does not matter.
func (s *State) classify(normal mgl32.Vec3, minGroundDot float32) ContactKind {
	kind := classifyContact(s.UpAxis, normal, minGroundDot)
	switch kind {
	case ContactGround:
		s.GroundContactCount++
		s.ContactNormal = s.ContactNormal.Add(normal)
	case ContactSteep:
		s.SteepContactCount++
		s.SteepNormal = s.SteepNormal.Add(normal)
	}
	return kind
}
