package util

import (
	"time"

	"fieldtrack.dev/backend/internal/pkg/fterr"
)

const calendarDateLayout = "2006-01-02"

// ParseCalendarDate parses an ISO-8601 date crossing the HTTP boundary.
// Any time-of-day component is discarded using the UTC date components,
// never local time.
func ParseCalendarDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fterr.ErrInvalidReq.Msg("invalid request: date is required")
	}
	if t, err := time.Parse(calendarDateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fterr.ErrInvalidReq.Msg("invalid request: unparseable date %q", s)
	}
	return TruncateToDate(t), nil
}

// TruncateToDate discards the time-of-day component of t using its UTC
// calendar date.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ClampDateFloor returns t truncated to its UTC date, or floor when the
// truncated date precedes floor.
func ClampDateFloor(t, floor time.Time) time.Time {
	t = TruncateToDate(t)
	if t.Before(floor) {
		return floor
	}
	return t
}
