// Package input turns keystrokes into pace changes.
//
//	<      slower (delay +10ms)
//	>      faster (delay -10ms)
//	x, X   quit
//
// Ctrl+C and Ctrl+D also quit, since a raw terminal no longer turns them into
// signals. Any other key is ignored.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/cancelreader"
	"github.com/san-kum/teleprompter/internal/config"
	"github.com/san-kum/teleprompter/internal/pace"
)

const (
	keyInterrupt = 0x03
	keyEOT       = 0x04
)

type keyReader interface {
	io.ReadCloser
	Cancel() bool
}

// plainReader stands in when the input cannot be watched for cancellation.
// It never closes the underlying reader.
type plainReader struct{ io.Reader }

func (plainReader) Cancel() bool { return false }
func (plainReader) Close() error { return nil }

type Listener struct {
	in     io.Reader
	pace   *pace.Config
	logger *slog.Logger
}

func New(in io.Reader, p *pace.Config) *Listener {
	return &Listener{in: in, pace: p, logger: slog.New(slog.DiscardHandler)}
}

func (l *Listener) WithLogger(logger *slog.Logger) *Listener {
	l.logger = logger
	return l
}

// Listen reads keystrokes until one of them finishes the run or ctx is
// canceled. The done flag is checked after each key, so Listen always waits
// for at least one keystroke; cancellation is what releases that read when
// the display finishes first.
//
// When the input reaches end of file no more keys can arrive, and Listen
// waits for ctx instead of ending the run.
func (l *Listener) Listen(ctx context.Context) error {
	r := l.open()
	defer r.Close()
	stop := context.AfterFunc(ctx, func() { r.Cancel() })
	defer stop()

	keys := bufio.NewReader(r)
	for {
		key, _, err := keys.ReadRune()
		switch {
		case errors.Is(err, cancelreader.ErrCanceled):
			return nil
		case errors.Is(err, io.EOF):
			l.logger.Debug("input closed")
			stop()
			<-ctx.Done()
			return nil
		case err != nil:
			return fmt.Errorf("input: read: %w", err)
		}
		l.handle(key)
		if l.pace.IsDone() {
			return nil
		}
	}
}

func (l *Listener) open() keyReader {
	cr, err := cancelreader.NewReader(l.in)
	if err != nil {
		l.logger.Debug("input is not cancelable", "error", err)
		return plainReader{l.in}
	}
	return cr
}

func (l *Listener) handle(key rune) {
	switch key {
	case '<':
		l.pace.UpdateDelay(config.DelayStepMs)
		l.logger.Debug("slower", "delay_ms", l.pace.CurrentDelay())
	case '>':
		l.pace.UpdateDelay(-config.DelayStepMs)
		l.logger.Debug("faster", "delay_ms", l.pace.CurrentDelay())
	case 'x', 'X', keyInterrupt, keyEOT:
		l.pace.SetDone()
		l.logger.Debug("quit requested", "key", key)
	}
}
