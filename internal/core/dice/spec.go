// Package dice parses dice specs and rolls them through a random.Drawer.
package dice

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/louisbranch/dicebot/internal/core/random"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
)

// ErrInvalidSpec indicates dice spec text does not match the NdM grammar or
// names dice the randomizer refuses to roll.
var ErrInvalidSpec = apperrors.New(apperrors.CodeFormat, "invalid dice spec")

var specPattern = regexp.MustCompile(`^(\d+)[dD](\d+)$`)

// Spec describes Count dice with Sides faces each.
type Spec struct {
	Count int
	Sides int
}

// ParseSpec parses the strict "NdM" grammar, e.g. "2D6" or "1d100".
//
// Both numbers must be positive and within the randomizer limits
// (random.MaxTimes dice, random.MaxSides faces); a spec outside them could
// never be rolled.
func ParseSpec(text string) (Spec, error) {
	m := specPattern.FindStringSubmatch(text)
	if m == nil {
		return Spec{}, invalidSpec(text, "does not match NdM")
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return Spec{}, invalidSpec(text, "dice count out of range")
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Spec{}, invalidSpec(text, "dice sides out of range")
	}
	spec := Spec{Count: count, Sides: sides}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// MustParseSpec is ParseSpec for package-level specs; it panics on error.
func MustParseSpec(text string) Spec {
	spec, err := ParseSpec(text)
	if err != nil {
		panic(err)
	}
	return spec
}

// Validate checks the spec can be rolled.
func (s Spec) Validate() error {
	switch {
	case s.Count <= 0 || s.Sides <= 0:
		return invalidSpec(s.String(), "dice count and sides must be positive")
	case s.Count > random.MaxTimes:
		return invalidSpec(s.String(), fmt.Sprintf("at most %d dice can be rolled", random.MaxTimes))
	case s.Sides > random.MaxSides:
		return invalidSpec(s.String(), fmt.Sprintf("dice have at most %d sides", random.MaxSides))
	}
	return nil
}

// Min returns the smallest total the spec can roll.
func (s Spec) Min() int {
	return s.Count
}

// Max returns the largest total the spec can roll.
func (s Spec) Max() int {
	return s.Count * s.Sides
}

// String renders the spec as "2D6".
func (s Spec) String() string {
	return fmt.Sprintf("%dD%d", s.Count, s.Sides)
}

func invalidSpec(text, reason string) error {
	return apperrors.WithMetadata(apperrors.CodeFormat,
		fmt.Sprintf("invalid dice spec %q: %s", text, reason),
		map[string]string{"Value": text, "Kind": "dice spec"})
}
