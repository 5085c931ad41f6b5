package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Stepper paces the interactive run: one keypress per step. While
// started on a real terminal, stdin is in raw mode so no Enter is
// needed; otherwise reads fall back to cooked mode.
type Stepper struct {
	Input io.Reader

	fd       int
	oldState *term.State
}

// NewStepper creates a stepper reading from stdin.
func NewStepper() (s *Stepper) {
	s = &Stepper{
		Input: os.Stdin,
		fd:    int(os.Stdin.Fd()),
	}

	return
}

// Start puts the terminal into raw mode to take single keypresses
// without OS-level line buffering. Call Stop() to restore it.
func (s *Stepper) Start() (err error) {
	if !term.IsTerminal(s.fd) {
		return
	}

	s.oldState, err = term.MakeRaw(s.fd)
	return
}

// Stop restores the terminal state.
func (s *Stepper) Stop() {
	if s.oldState != nil {
		_ = term.Restore(s.fd, s.oldState)
		s.oldState = nil
	}
}

// Wait blocks for one keypress. Returns false when the run should stop:
// 'q', Ctrl-C, Ctrl-D, or end of input.
func (s *Stepper) Wait() (cont bool) {
	var one [1]byte
	n, err := s.Input.Read(one[:])
	if err != nil || n == 0 {
		return
	}

	switch one[0] {
	case 'q', 'Q', 0x03, 0x04:
		return
	}

	return true
}
