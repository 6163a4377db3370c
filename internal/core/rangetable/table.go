// Package rangetable maps dice totals to outcomes through contiguous ranges,
// the way printed tabletop lookup charts do.
//
// A Table is validated once at construction: its ranges must partition the
// totals its dice can produce, every total covered exactly once. After that
// it is immutable and safe for concurrent use.
package rangetable

import (
	"fmt"
	"sort"

	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/core/result"
)

// Entry pairs a range descriptor with its outcome. Range accepts anything
// ConvStringRange does.
type Entry[T any] struct {
	Range   any
	Outcome T
}

type item[T any] struct {
	rng     Range
	outcome T
}

// Table is a validated range table.
type Table[T any] struct {
	name  string
	spec  dice.Spec
	items []item[T]
}

// New builds a table rolled with diceSpec ("2D6").
//
// Construction fails with ErrFormat for a malformed dice spec or range
// string, ErrTypeMismatch for a non-integer bound, ErrCoverage when a total
// the dice can produce is missing or a range reaches past them, and
// ErrOverlap when a total is covered twice.
func New[T any](name, diceSpec string, entries []Entry[T]) (*Table[T], error) {
	spec, err := dice.ParseSpec(diceSpec)
	if err != nil {
		return nil, inTable(err, name)
	}

	items := make([]item[T], 0, len(entries))
	for _, entry := range entries {
		rng, err := ConvStringRange(entry.Range)
		if err != nil {
			return nil, inTable(err, name)
		}
		if rng.Lo > rng.Hi {
			return nil, formatError(fmt.Sprintf("%d..%d", rng.Lo, rng.Hi), "range", name)
		}
		items = append(items, item[T]{rng: rng, outcome: entry.Outcome})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].rng.Lo < items[j].rng.Lo
	})

	if err := checkPartition(name, spec, items); err != nil {
		return nil, err
	}

	return &Table[T]{
		name:  name,
		spec:  spec,
		items: items,
	}, nil
}

// MustNew is New for tables built at package load; it panics on error so a
// broken chart cannot serve results.
func MustNew[T any](name, diceSpec string, entries []Entry[T]) *Table[T] {
	t, err := New(name, diceSpec, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// checkPartition walks the sorted ranges and verifies they cover
// [spec.Min(), spec.Max()] exactly once.
func checkPartition[T any](name string, spec dice.Spec, items []item[T]) error {
	lo, hi := spec.Min(), spec.Max()
	if len(items) == 0 {
		return coverageError(name, spec.String(), fmt.Sprintf("roll %d is missing", lo))
	}
	if first := items[0].rng.Lo; first < lo {
		return coverageError(name, spec.String(), fmt.Sprintf("roll %d is outside %d..%d", first, lo, hi))
	}

	next := lo
	for _, it := range items {
		switch {
		case it.rng.Lo > next:
			return coverageError(name, spec.String(), fmt.Sprintf("roll %d is missing", next))
		case it.rng.Lo < next:
			return overlapError(name, it.rng.Lo)
		case it.rng.Hi > hi:
			return coverageError(name, spec.String(), fmt.Sprintf("roll %d is outside %d..%d", it.rng.Hi, lo, hi))
		}
		next = it.rng.Hi + 1
	}
	if next <= hi {
		return coverageError(name, spec.String(), fmt.Sprintf("roll %d is missing", next))
	}
	return nil
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// Spec returns the dice the table is rolled with.
func (t *Table[T]) Spec() dice.Spec {
	return t.spec
}

// Entries returns the validated entries sorted by range, each Range a
// Range value.
func (t *Table[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], len(t.items))
	for i, it := range t.items {
		entries[i] = Entry[T]{Range: it.rng, Outcome: it.outcome}
	}
	return entries
}

// Lookup returns the outcome for total.
//
// A total outside the dice range cannot come from rolling this table, so it
// is a caller bug: Lookup panics with an error matching
// ErrInvariantViolation rather than inventing an outcome.
func (t *Table[T]) Lookup(total int) T {
	i := sort.Search(len(t.items), func(i int) bool {
		return t.items[i].rng.Hi >= total
	})
	if i == len(t.items) || !t.items[i].rng.Contains(total) {
		panic(invariantViolation(t.name, total))
	}
	return t.items[i].outcome
}

// Lookup is the result of rolling a table.
type Lookup[T any] struct {
	Table   string
	Roll    dice.Roll
	Outcome T
}

// Total returns the rolled total.
func (l Lookup[T]) Total() int {
	return l.Roll.Total
}

// String renders "Name(7[3,4]) ＞ outcome".
func (l Lookup[T]) String() string {
	return fmt.Sprintf("%s(%s)%s%v", l.Table, l.Roll.Format(), result.Arrow, l.Outcome)
}

// RollAndLookup rolls the table's dice through d and looks up the total.
func (t *Table[T]) RollAndLookup(d random.Drawer) Lookup[T] {
	roll := dice.RollSpec(t.spec, d)
	return Lookup[T]{
		Table:   t.name,
		Roll:    roll,
		Outcome: t.Lookup(roll.Total),
	}
}
