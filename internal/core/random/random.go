// Package random provides the bounded draw service behind every dice command.
//
// # Silent degrade
//
// No operation fails. Requests outside the supported bounds normalize to 0
// (single draws) or an empty slice (multi draws) so that malformed chat input
// can never crash an evaluation. MaxSides and MaxTimes bound the work done by
// a single call.
//
// # Atomicity
//
// A Randomizer may be shared between sessions. Each method call is atomic,
// and Do holds the lock for a whole evaluation so that a command's draws are
// never interleaved with another caller's draws.
package random

import (
	"math/rand"
	"sync"
)

const (
	// MaxSides is the largest die RollOnce will roll.
	MaxSides = 1000
	// MaxTimes is the largest number of dice RollMany will roll.
	MaxTimes = 200
)

// Source is the entropy primitive wrapped by a Randomizer.
// Intn must return a value in [0, n) for n > 0.
type Source interface {
	Intn(n int) int
}

// Drawer is the draw capability consumed by tables, choices and rule modules.
type Drawer interface {
	// RollOnce returns a value in [1, sides], or 0 when sides is 0 or
	// exceeds MaxSides.
	RollOnce(sides int) int
	// RollMany returns times independent RollOnce results, or an empty slice
	// when times is negative or exceeds MaxTimes.
	RollMany(times, sides int) []int
	// RollSum returns the sum of RollMany.
	RollSum(times, sides int) int
	// RollIndex returns a value in [0, n), or 0 when n <= 0.
	RollIndex(n int) int
}

// Randomizer serializes access to a Source.
type Randomizer struct {
	mu  sync.Mutex
	src Source
}

// New wraps src. The Randomizer takes ownership of src; callers must not
// draw from it directly afterwards.
func New(src Source) *Randomizer {
	return &Randomizer{src: src}
}

// NewSeeded returns a Randomizer backed by math/rand seeded with seed.
// Two Randomizers with the same seed produce the same draws.
func NewSeeded(seed int64) *Randomizer {
	return New(rand.New(rand.NewSource(seed)))
}

// NewFromEntropy returns a Randomizer seeded from crypto/rand.
func NewFromEntropy() (*Randomizer, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed), nil
}

// Do runs fn while holding the Randomizer lock. fn must draw only through
// the Drawer it is given; calling methods on r from inside fn deadlocks.
func (r *Randomizer) Do(fn func(Drawer)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(draws{src: r.src})
}

// RollOnce implements Drawer.
func (r *Randomizer) RollOnce(sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return draws{src: r.src}.RollOnce(sides)
}

// RollMany implements Drawer.
func (r *Randomizer) RollMany(times, sides int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return draws{src: r.src}.RollMany(times, sides)
}

// RollSum implements Drawer.
func (r *Randomizer) RollSum(times, sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return draws{src: r.src}.RollSum(times, sides)
}

// RollIndex implements Drawer.
func (r *Randomizer) RollIndex(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return draws{src: r.src}.RollIndex(n)
}

// draws is the unlocked Drawer handed out by Do.
type draws struct {
	src Source
}

func (d draws) RollOnce(sides int) int {
	// Negative sides roll a die of the same magnitude.
	if sides < 0 {
		if sides < -MaxSides {
			return 0
		}
		sides = -sides
	}
	if sides == 0 || sides > MaxSides {
		return 0
	}
	return d.src.Intn(sides) + 1
}

func (d draws) RollMany(times, sides int) []int {
	if times < 0 || times > MaxTimes {
		return []int{}
	}
	values := make([]int, times)
	for i := range values {
		values[i] = d.RollOnce(sides)
	}
	return values
}

func (d draws) RollSum(times, sides int) int {
	total := 0
	for _, value := range d.RollMany(times, sides) {
		total += value
	}
	return total
}

func (d draws) RollIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return d.src.Intn(n)
}
