package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_NoTTY(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "Linting", false)

	s.Start()
	for range 20 {
		s.Tick()
	}
	s.Pause()
	s.Stop()

	assert.Empty(t, buf.String())
}

func TestSpinner_TTY(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "Linting", true)

	s.Start()
	assert.Contains(t, buf.String(), "Linting...")

	buf.Reset()
	for range tickEvery - 1 {
		s.Tick()
	}
	assert.Empty(t, buf.String(), "redraw before tickEvery")

	s.Tick()
	assert.Contains(t, buf.String(), "Linting... 8")

	buf.Reset()
	s.Stop()
	assert.True(t, strings.HasPrefix(buf.String(), "\r"))

	buf.Reset()
	s.Tick()
	s.Stop()
	assert.Empty(t, buf.String(), "stopped spinner stays silent")
}
