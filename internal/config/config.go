package config

import (
	"errors"
	"fmt"
)

const (
	DefaultDelayMs = 200
	MinDelayMs     = 20
	MaxDelayMs     = 1000
	DelayStepMs    = 10
	WrapWidth      = 70
	DefaultSource  = "sampleQuotes.txt"
)

var ErrInvalidOptions = errors.New("config: invalid options")

// Options holds the per-run settings collected from the command line.
type Options struct {
	Source  string
	DelayMs int
	LogFile string
	Quiet   bool
}

func DefaultOptions() *Options {
	return &Options{
		Source:  DefaultSource,
		DelayMs: DefaultDelayMs,
	}
}

// Validate rejects options that cannot start a run. The delay is clamped
// rather than rejected, matching how speed changes are applied.
func (o *Options) Validate() error {
	if o.Source == "" {
		return fmt.Errorf("%w: empty source path", ErrInvalidOptions)
	}
	o.DelayMs = ClampDelay(o.DelayMs)
	return nil
}

func ClampDelay(ms int) int {
	return min(max(ms, MinDelayMs), MaxDelayMs)
}
