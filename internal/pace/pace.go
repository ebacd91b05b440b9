// Package pace holds the state shared by the display and input loops: the
// current delay between words and the one-way done flag.
//
// Both fields are atomic, so a Config may be read and updated from any number
// of goroutines without further locking.
package pace

import (
	"sync/atomic"
	"time"

	"github.com/san-kum/teleprompter/internal/config"
)

type Config struct {
	delay atomic.Int64
	done  atomic.Bool
}

func New() *Config {
	return NewWithDelay(config.DefaultDelayMs)
}

// NewWithDelay starts at ms, clamped to the allowed delay range.
func NewWithDelay(ms int) *Config {
	c := &Config{}
	c.delay.Store(int64(config.ClampDelay(ms)))
	return c
}

// UpdateDelay adds increment milliseconds to the delay and clamps the result.
// Negative increments speed the display up.
func (c *Config) UpdateDelay(increment int) {
	for {
		cur := c.delay.Load()
		next := int64(config.ClampDelay(int(cur) + increment))
		if c.delay.CompareAndSwap(cur, next) {
			return
		}
	}
}

func (c *Config) SetDone() {
	c.done.Store(true)
}

func (c *Config) IsDone() bool {
	return c.done.Load()
}

// CurrentDelay returns the delay in milliseconds.
func (c *Config) CurrentDelay() int {
	return int(c.delay.Load())
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.delay.Load()) * time.Millisecond
}
