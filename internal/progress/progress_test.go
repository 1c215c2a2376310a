package progress

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter_IncrementCapsAtTarget(t *testing.T) {
	counter := NewCounter(filepath.Join(t.TempDir(), "progress.yml"))

	for i := 0; i < DailyTarget+5; i++ {
		counter.Increment()
	}
	assert.Equal(t, DailyTarget, counter.Count())
}

func TestCounter_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.yml")

	counter := NewCounter(path)
	counter.Increment()
	counter.Increment()

	reloaded := NewCounter(path)
	assert.Equal(t, 2, reloaded.Count())
}

func TestCounter_ResetsOnNewDay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.yml")

	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	counter := NewCounter(path, WithClock(func() time.Time { return today }))
	counter.Increment()
	counter.Increment()
	assert.Equal(t, 2, counter.Count())

	tomorrow := today.Add(24 * time.Hour)
	assert.Equal(t, 0, NewCounter(path, WithClock(func() time.Time { return tomorrow })).Count())
}

func TestCounter_ResetsMidProcessWhenDayRollsOver(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	counter := NewCounter(filepath.Join(t.TempDir(), "progress.yml"), WithClock(func() time.Time { return now }))

	counter.Increment()
	assert.Equal(t, 1, counter.Count())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 0, counter.Count())
	assert.Equal(t, 1, counter.Increment())
}

func TestCounter_Target(t *testing.T) {
	counter := NewCounter(filepath.Join(t.TempDir(), "progress.yml"))
	assert.Equal(t, 12, counter.Target())
}
