// Package progress provides a CLI activity indicator. Output goes to stderr
// to keep stdout clean for diagnostics and piping, and TTY detection keeps
// redirected runs free of control characters.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// tickEvery is how many Tick calls advance the spinner one frame.
// Small trees finish before the first frame change.
const tickEvery = 8

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner provides visual feedback while a tree of unknown size is walked,
// showing how many files have been checked so far.
type Spinner struct {
	w       io.Writer
	label   string
	frame   int
	count   int
	isTTY   bool
	running bool
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return New(os.Stderr, label, term.IsTerminal(int(os.Stderr.Fd())))
}

// New creates a spinner writing to w. When tty is false every method is a
// no-op.
func New(w io.Writer, label string, tty bool) *Spinner {
	return &Spinner{w: w, label: label, isTTY: tty}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	if !s.isTTY {
		return
	}
	s.running = true
	fmt.Fprintf(s.w, "%s %s...", frames[0], s.label)
}

// Tick records one unit of work and redraws every tickEvery calls.
func (s *Spinner) Tick() {
	if !s.isTTY || !s.running {
		return
	}
	s.count++
	if s.count%tickEvery != 0 {
		return
	}
	s.frame = (s.frame + 1) % len(frames)
	fmt.Fprintf(s.w, "\r%s %s... %d", frames[s.frame], s.label, s.count)
}

// Pause clears the line so other output can be written to the terminal.
// The next Tick redraws it.
func (s *Spinner) Pause() {
	if !s.isTTY || !s.running {
		return
	}
	s.clear()
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if !s.isTTY || !s.running {
		return
	}
	s.running = false
	s.clear()
}

func (s *Spinner) clear() {
	fmt.Fprintf(s.w, "\r%s\r", "                                        ")
}
