// Package display writes tokens to the screen at the pace held in a
// pace.Config, re-reading the delay before every wait so speed changes apply
// from the next word on.
package display

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/san-kum/teleprompter/internal/chunk"
	"github.com/san-kum/teleprompter/internal/pace"
	"github.com/zoobzio/clockz"
)

// Source is a single-pass token sequence, such as a *chunk.File.
type Source interface {
	Scan() bool
	Token() string
	Err() error
}

// Display paces tokens onto an output stream.
type Display struct {
	out    io.Writer
	pace   *pace.Config
	clock  clockz.Clock
	logger *slog.Logger
}

func New(out io.Writer, p *pace.Config) *Display {
	return &Display{out: out, pace: p, logger: slog.New(slog.DiscardHandler)}
}

// WithClock sets a custom clock for testing.
func (d *Display) WithClock(clock clockz.Clock) *Display {
	d.clock = clock
	return d
}

func (d *Display) WithLogger(logger *slog.Logger) *Display {
	d.logger = logger
	return d
}

func (d *Display) getClock() clockz.Clock {
	if d.clock == nil {
		return clockz.RealClock
	}
	return d.clock
}

// Show opens path and plays it. An unreadable source is returned as is.
func (d *Display) Show(ctx context.Context, path string) error {
	f, err := chunk.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	d.logger.Debug("source opened", "path", path)
	return d.Play(ctx, f)
}

// Play writes every token of src. It marks the run done once src is
// exhausted; a cancelled ctx stops it early without doing so.
func (d *Display) Play(ctx context.Context, src Source) error {
	clock := d.getClock()
	words := 0
	for src.Scan() {
		if ctx.Err() != nil {
			d.logger.Debug("display canceled", "words", words)
			return nil
		}
		tok := src.Token()
		if _, err := io.WriteString(d.out, tok); err != nil {
			return fmt.Errorf("display: write: %w", err)
		}
		if strings.TrimSpace(tok) == "" {
			continue
		}
		words++
		select {
		case <-clock.After(d.pace.Delay()):
		case <-ctx.Done():
			d.logger.Debug("display canceled", "words", words)
			return nil
		}
	}
	if err := src.Err(); err != nil {
		return err
	}
	d.pace.SetDone()
	d.logger.Debug("display finished", "words", words)
	return nil
}
