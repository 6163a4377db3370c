package randomtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacesReplaysSequence(t *testing.T) {
	r := New(4, 1, 6)
	assert.Equal(t, []int{4, 1, 6}, r.RollMany(3, 6))
}

func TestFacesIndexIsOneBased(t *testing.T) {
	r := New(2)
	assert.Equal(t, 1, r.RollIndex(3))
}

func TestFacesRemaining(t *testing.T) {
	src := NewFaces(1, 2, 3)
	src.Intn(6)
	assert.Equal(t, 2, src.Remaining())
}

func TestFacesPanicsOnMisuse(t *testing.T) {
	assert.Panics(t, func() { NewFaces().Intn(6) })
	assert.Panics(t, func() { NewFaces(7).Intn(6) })
}
