package rangetable

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
)

// Range is an inclusive integer range [Lo, Hi].
type Range struct {
	Lo int
	Hi int
}

// HalfOpen is an integer range [Lo, Hi) excluding Hi.
type HalfOpen struct {
	Lo int
	Hi int
}

// Contains reports whether v is in the range.
func (r Range) Contains(v int) bool {
	return r.Lo <= v && v <= r.Hi
}

// String renders "3..7", or "3" for a single value.
func (r Range) String() string {
	if r.Lo == r.Hi {
		return strconv.Itoa(r.Lo)
	}
	return fmt.Sprintf("%d..%d", r.Lo, r.Hi)
}

var stringRange = regexp.MustCompile(`^(-?\d+)(?:\.\.(-?\d+))?$`)

// ConvStringRange converts a range descriptor to an inclusive Range.
//
// Accepted descriptors are any Go integer (a single value), Range, HalfOpen,
// and the strings "a" and "a..b". A malformed string fails with ErrFormat;
// fractional numbers and every other kind fail with ErrTypeMismatch.
func ConvStringRange(v any) (Range, error) {
	switch x := v.(type) {
	case Range:
		return x, nil
	case HalfOpen:
		return Range{Lo: x.Lo, Hi: x.Hi - 1}, nil
	case string:
		return parseStringRange(x)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Range{}, typeMismatch(v)
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int(rv.Int())
		return Range{Lo: n, Hi: n}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(^uint(0)>>1) {
			return Range{}, formatError(strconv.FormatUint(u, 10), "range bound", "")
		}
		n := int(u)
		return Range{Lo: n, Hi: n}, nil
	default:
		return Range{}, typeMismatch(v)
	}
}

func parseStringRange(text string) (Range, error) {
	m := stringRange.FindStringSubmatch(text)
	if m == nil {
		return Range{}, formatError(text, "range", "")
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Range{}, formatError(text, "range", "")
	}
	if m[2] == "" {
		return Range{Lo: lo, Hi: lo}, nil
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Range{}, formatError(text, "range", "")
	}
	return Range{Lo: lo, Hi: hi}, nil
}
