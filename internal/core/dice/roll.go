package dice

import (
	"strconv"
	"strings"

	"github.com/louisbranch/dicebot/internal/core/random"
)

// Roll captures the faces rolled for one spec.
type Roll struct {
	Spec  Spec
	Faces []int
	Total int
}

// Trace renders the individual faces, e.g. "3,4".
func (r Roll) Trace() string {
	parts := make([]string, len(r.Faces))
	for i, face := range r.Faces {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, ",")
}

// Format renders the total followed by its faces, e.g. "7[3,4]".
func (r Roll) Format() string {
	return strconv.Itoa(r.Total) + "[" + r.Trace() + "]"
}

// Result captures the rolls for a pool of specs.
type Result struct {
	Rolls []Roll
	Total int
}

// Trace renders every roll's faces, pools separated by ", ".
func (r Result) Trace() string {
	parts := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		parts[i] = roll.Trace()
	}
	return strings.Join(parts, ", ")
}

// RollSpec rolls spec through d.
//
// The Total field is the sum of all faces. An invalid spec rolls the way the
// Drawer degrades (empty or zero faces); callers that need a valid roll
// validate the spec first.
func RollSpec(spec Spec, d random.Drawer) Roll {
	faces := d.RollMany(spec.Count, spec.Sides)
	total := 0
	for _, face := range faces {
		total += face
	}
	return Roll{
		Spec:  spec,
		Faces: faces,
		Total: total,
	}
}

// RollPool rolls every spec in order.
//
// The Roll entries in Result.Rolls appear in the same order as specs.
// Result.Total is the sum of every die rolled across the pool.
func RollPool(specs []Spec, d random.Drawer) Result {
	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		roll := RollSpec(spec, d)
		rolls = append(rolls, roll)
		total += roll.Total
	}
	return Result{
		Rolls: rolls,
		Total: total,
	}
}
