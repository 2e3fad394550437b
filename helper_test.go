package finances

import (
	"testing"
	"time"
)

// setNow freezes the package clock for the duration of the test.
func setNow(t *testing.T, on time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return on }
	t.Cleanup(func() { now = old })
}

// day is a helper for test to create a time at noon UTC.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
