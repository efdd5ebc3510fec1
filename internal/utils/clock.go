package utils

import "time"

// Clock supplies the timestamps stamped on records: created_at on insert and
// updated_at on update.
type Clock func() time.Time

// SystemClock returns the current time in UTC, truncated to microseconds so
// values survive a round trip through PostgreSQL timestamps unchanged.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
