// Package calendar maps wall time onto promotion days. A promotion day starts
// at a fixed offset from UTC midnight (US eastern by default), not at UTC
// midnight and not at a DST-aware local midnight.
package calendar

import "time"

// DefaultOffset is the promotion-day offset from UTC.
const DefaultOffset = -5 * time.Hour

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Useful in tests and dry runs.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Calendar converts instants to promotion dates and back. Promotion dates
// are represented as date-only time.Time values at 00:00 UTC.
type Calendar struct {
	offset time.Duration
	clock  Clock
}

// New returns a calendar with the given offset. A nil clock uses SystemClock.
func New(offset time.Duration, clock Clock) *Calendar {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Calendar{offset: offset, clock: clock}
}

// Now returns the current instant in UTC.
func (c *Calendar) Now() time.Time { return c.clock.Now().UTC() }

// DateOf returns the promotion date the instant t falls on.
func (c *Calendar) DateOf(t time.Time) time.Time {
	return Date(t.UTC().Add(c.offset))
}

// Today returns the current promotion date.
func (c *Calendar) Today() time.Time { return c.DateOf(c.Now()) }

// Day returns the promotion date offset days from today.
func (c *Calendar) Day(offset int) time.Time { return c.Today().AddDate(0, 0, offset) }

// DayStart returns the instant the promotion day d begins.
func (c *Calendar) DayStart(d time.Time) time.Time {
	return Date(d).Add(-c.offset)
}

// DayEnd returns the instant the promotion day d ends (exclusive).
func (c *Calendar) DayEnd(d time.Time) time.Time {
	return c.DayStart(Date(d).AddDate(0, 0, 1))
}

// RunWindow returns the instants bounding the inclusive date range
// [start, end]: from the start of start to the end of end.
func (c *Calendar) RunWindow(start, end time.Time) (time.Time, time.Time) {
	return c.DayStart(start), c.DayEnd(end)
}

// Date truncates t to a date-only value at 00:00 UTC, keeping t's calendar
// fields.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
