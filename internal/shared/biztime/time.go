// Package biztime keeps every persisted timestamp in UTC.
package biztime

import "time"

// nowFunc is swapped by tests that need a fixed clock.
var nowFunc = time.Now

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return nowFunc().UTC()
}

// SetClock replaces the clock and returns a function restoring the previous one.
func SetClock(fn func() time.Time) (restore func()) {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}

// ToUTC converts t to UTC, leaving the zero value untouched.
func ToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
