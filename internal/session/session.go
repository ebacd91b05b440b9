// Package session runs one teleprompter pass: the display and the keyboard
// listener run side by side over a shared pace.Config, and whichever finishes
// first cancels the other.
package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/san-kum/teleprompter/internal/display"
	"github.com/san-kum/teleprompter/internal/input"
	"github.com/san-kum/teleprompter/internal/pace"
	"github.com/zoobzio/clockz"
	"golang.org/x/sync/errgroup"
)

type Session struct {
	source  string
	pace    *pace.Config
	display *display.Display
	input   *input.Listener
	logger  *slog.Logger
}

// Result describes how a run ended.
type Result struct {
	// Finished is true when the whole text was shown, false when the run
	// was stopped from the keyboard or canceled.
	Finished bool
	DelayMs  int
}

func New(source string, out io.Writer, in io.Reader, p *pace.Config) *Session {
	return &Session{
		source:  source,
		pace:    p,
		display: display.New(out, p),
		input:   input.New(in, p),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithClock sets the clock used to pace the display.
func (s *Session) WithClock(clock clockz.Clock) *Session {
	s.display.WithClock(clock)
	return s
}

func (s *Session) WithLogger(logger *slog.Logger) *Session {
	s.logger = logger
	s.display.WithLogger(logger.With("loop", "display"))
	s.input.WithLogger(logger.With("loop", "input"))
	return s
}

// Run blocks until the text is exhausted, a quit key is pressed, ctx is
// canceled, or the source fails. Both loops have returned when Run does.
func (s *Session) Run(ctx context.Context) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	var finished bool
	g.Go(func() error {
		defer cancel()
		if err := s.display.Show(runCtx, s.source); err != nil {
			return err
		}
		finished = runCtx.Err() == nil
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return s.input.Listen(runCtx)
	})

	err := g.Wait()
	res := Result{Finished: finished, DelayMs: s.pace.CurrentDelay()}
	if err != nil {
		s.logger.Debug("run failed", "source", s.source, "error", err)
		return res, err
	}
	s.logger.Info("run ended", "finished", res.Finished, "delay_ms", res.DelayMs)
	return res, nil
}
