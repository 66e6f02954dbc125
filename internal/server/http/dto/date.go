package dto

import (
	"errors"
	"strings"
	"time"
)

var errInvalidDate = errors.New("expected YYYY-MM-DD or RFC 3339 timestamp")

// ParseDate accepts a calendar date or an RFC 3339 timestamp and returns
// the calendar date it names at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
