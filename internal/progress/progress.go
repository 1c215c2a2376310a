// Package progress tracks how many practice attempts were completed today
// against a fixed daily target.
package progress

import (
	"log/slog"
	"time"

	"github.com/kerwinzhai/speakdaily/internal/storage"
)

// DailyTarget is the number of completed translations counted per day;
// increments past the target are absorbed.
const DailyTarget = 12

type state struct {
	Count int    `yaml:"count"`
	Day   string `yaml:"day"`
}

// Counter is a persisted per-day counter. It resets automatically when the
// stored day is no longer today.
type Counter struct {
	path string
	now  func() time.Time
	st   state
}

// Option configures a Counter during construction.
type Option func(*Counter)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Counter) {
		c.now = now
	}
}

// NewCounter loads today's count from path. A stored count from a previous
// day, or an absent or undecodable file, starts the day at zero.
func NewCounter(path string, opts ...Option) *Counter {
	counter := &Counter{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(counter)
	}

	st, err := storage.ReadYamlFile[state](path)
	if err == nil && st.Day == counter.today() {
		counter.st = st
	} else {
		counter.st = state{Day: counter.today()}
	}
	return counter
}

// Increment adds one completed attempt, capped at DailyTarget, and returns
// the new count.
func (c *Counter) Increment() int {
	c.resetIfNeeded()
	c.st.Count = min(c.st.Count+1, DailyTarget)
	c.flush()
	return c.st.Count
}

// Count returns today's count.
func (c *Counter) Count() int {
	c.resetIfNeeded()
	return c.st.Count
}

func (c *Counter) Target() int {
	return DailyTarget
}

func (c *Counter) today() string {
	return c.now().Local().Format("2006-01-02")
}

func (c *Counter) resetIfNeeded() {
	if c.st.Day != c.today() {
		c.st = state{Day: c.today()}
	}
}

func (c *Counter) flush() {
	if err := storage.WriteYamlFile(c.path, c.st); err != nil {
		slog.Default().Warn("failed to persist daily progress", "error", err)
	}
}
