// Package randomtest provides deterministic random sources for tests.
package randomtest

import (
	"fmt"
	"sync"

	"github.com/louisbranch/dicebot/internal/core/random"
)

// Faces is a random.Source that replays a fixed sequence of die faces.
//
// Each Intn(n) call consumes the next face f and returns f-1, so a face is
// what RollOnce reports and a 1-based position is what RollIndex selects.
// Faces panics when the sequence is exhausted or a face does not fit the
// requested die, which surfaces test setup mistakes immediately.
type Faces struct {
	mu    sync.Mutex
	faces []int
	pos   int
}

// NewFaces returns a source replaying faces in order.
func NewFaces(faces ...int) *Faces {
	return &Faces{faces: append([]int(nil), faces...)}
}

// Intn implements random.Source.
func (f *Faces) Intn(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pos >= len(f.faces) {
		panic(fmt.Sprintf("randomtest: face sequence exhausted after %d draws", f.pos))
	}
	face := f.faces[f.pos]
	f.pos++
	if face < 1 || face > n {
		panic(fmt.Sprintf("randomtest: face %d does not fit d%d (draw %d)", face, n, f.pos))
	}
	return face - 1
}

// Remaining reports how many faces have not been drawn yet.
func (f *Faces) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.faces) - f.pos
}

// New returns a Randomizer replaying faces.
func New(faces ...int) *random.Randomizer {
	return random.New(NewFaces(faces...))
}
