package shared

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD and returns the calendar day
// as midnight UTC. Any time-of-day or offset in the input is dropped:
// callers deal in whole days only.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, err
		}
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
