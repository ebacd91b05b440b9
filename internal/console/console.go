// Package console prepares the terminal for a teleprompter run: keystrokes
// are read raw and unechoed, the cursor is hidden, and line breaks written to
// the raw terminal still return the carriage.
package console

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Session is the terminal state of one run. Its zero value is a no-op, which
// is what callers get when stdin is not a terminal.
type Session struct {
	in     *os.File
	cursor io.Writer
	state  *term.State
}

// Start switches in to raw mode if it is a terminal, and hides the cursor if
// out is one too. Restore undoes both.
func Start(in, out *os.File) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return &Session{}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	s := &Session{in: in, state: state}
	if isTerminal(out) {
		s.cursor = out
		io.WriteString(out, hideCursor)
	}
	return s, nil
}

func (s *Session) Raw() bool { return s.state != nil }

// Output returns the writer to use for f while the session lasts. Terminal
// outputs of a raw session get their line feeds expanded.
func (s *Session) Output(f *os.File) io.Writer {
	if !s.Raw() || !isTerminal(f) {
		return f
	}
	return NewCRLFWriter(f)
}

func (s *Session) Restore() error {
	if s.state == nil {
		return nil
	}
	if s.cursor != nil {
		io.WriteString(s.cursor, showCursor)
	}
	err := term.Restore(int(s.in.Fd()), s.state)
	s.state = nil
	return err
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// CRLFWriter expands "\n" to "\r\n". Raw mode turns off the terminal's own
// output processing, so a bare line feed would not return to column zero.
type CRLFWriter struct {
	w io.Writer
}

func NewCRLFWriter(w io.Writer) *CRLFWriter {
	return &CRLFWriter{w: w}
}

func (c *CRLFWriter) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '\n') < 0 {
		return c.w.Write(p)
	}
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
