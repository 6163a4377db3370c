package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitfWritesAndExitsWithCode1(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	prevWriter, prevExit := exitWriter, exit
	exitWriter, exit = &buf, func(c int) { code = c }
	t.Cleanup(func() {
		exitWriter, exit = prevWriter, prevExit
	})

	Exitf("fatal: %s", "tables missing")

	assert.Equal(t, 1, code)
	assert.Equal(t, "fatal: tables missing\n", buf.String())
}
