package leave

import "time"

// DateOnly collapses t to its calendar day, midnight UTC. A value like
// 2026-03-05T00:00:00+02:00 stays the 5th, not the 4th.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DurationDays returns the inclusive day count between start and end.
// A leave from Monday to Friday is five days, not four. Both bounds are
// collapsed to calendar days first, so a time-of-day or offset in the
// input cannot shave a day off the count.
//
// Ordering is the caller's concern. A reversed range yields a
// non-positive count rather than an error, so callers must reject
// end < start before computing anything from the result.
func DurationDays(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours()/24) + 1
}
