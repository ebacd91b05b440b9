// Package chunk turns lines of text into display tokens: each word followed
// by a space, plus line breaks at the end of every source line and whenever
// the running line length passes the wrap width.
package chunk

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/san-kum/teleprompter/internal/config"
)

// Newline is the line-break token.
const Newline = "\n"

const bom = "\ufeff"

// Line tokenizes a single source line, without its line terminator.
// Words are split on single spaces, so runs of spaces produce lone " " tokens.
func Line(line string) []string {
	words := strings.Split(line, " ")
	tokens := make([]string, 0, len(words)+2)
	length := 0
	for _, w := range words {
		tokens = append(tokens, w+" ")
		length += utf8.RuneCountInString(w) + 1
		if length > config.WrapWidth {
			tokens = append(tokens, Newline)
			length = 0
		}
	}
	return append(tokens, Newline)
}

// Scanner yields tokens from a reader one at a time. It reads a single line
// ahead at most, so arbitrarily large sources are streamed.
//
// Lines end at "\n", "\r\n" or a lone "\r". A UTF-8 byte order mark at the
// start of the source is dropped.
type Scanner struct {
	r       *bufio.Reader
	lines   []string
	pending []string
	tok     string
	err     error
	started bool
	eof     bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Scan advances to the next token. It returns false at the end of the source
// or on a read error, which is then reported by Err.
func (s *Scanner) Scan() bool {
	for len(s.pending) == 0 {
		line, ok := s.readLine()
		if !ok {
			s.tok = ""
			return false
		}
		s.pending = Line(line)
	}
	s.tok = s.pending[0]
	s.pending = s.pending[1:]
	return true
}

func (s *Scanner) Token() string { return s.tok }

func (s *Scanner) Err() error { return s.err }

func (s *Scanner) readLine() (string, bool) {
	for len(s.lines) == 0 {
		if s.eof {
			return "", false
		}
		s.fill()
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true
}

// fill reads up to the next "\n" and queues the lines it holds.
func (s *Scanner) fill() {
	text, err := s.r.ReadString('\n')
	if !s.started {
		s.started = true
		text = strings.TrimPrefix(text, bom)
	}
	if err != nil {
		s.eof = true
		if err != io.EOF {
			s.err = err
			return
		}
		if text == "" {
			return
		}
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	s.lines = append(s.lines, strings.Split(text, "\r")...)
}

// Tokens drains r and returns every token. Intended for short inputs.
func Tokens(r io.Reader) ([]string, error) {
	s := NewScanner(r)
	var out []string
	for s.Scan() {
		out = append(out, s.Token())
	}
	return out, s.Err()
}
