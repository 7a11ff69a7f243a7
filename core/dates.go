package core

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate for anything it cannot read.
var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates (the value an HTML
// date input submits). Values without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
