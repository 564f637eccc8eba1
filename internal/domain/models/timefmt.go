// internal/domain/models/timefmt.go
package models

import (
	"strings"
	"time"
)

// isoLayouts are the timestamp shapes the Garden server emits. Naive
// datetimes arrive without a zone, so those layouts are tried too.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
}

// ParseTime parses an API timestamp. It returns the zero time when s is
// empty or not in a recognised layout.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" {
		return time.Time{}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
