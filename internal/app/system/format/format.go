// Package format turns raw snapshot values into display strings.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Layouts used for timestamps on cards and in the CSV export.
const (
	DateTimeLayout = "1/2/2006, 3:04:05 PM"
	ClockLayout    = "3:04:05 PM"
)

// DateTime formats t in the dashboard's date-time layout.
// Naive server timestamps are shown as sent. The zero time renders as
// missing.
func DateTime(t time.Time, missing string) string {
	if t.IsZero() {
		return missing
	}
	return t.Format(DateTimeLayout)
}

// Clock formats t as a wall-clock time, or "Never" for the zero time.
func Clock(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format(ClockLayout)
}

// KB renders a byte count as kilobytes with two decimals.
func KB(size int64) string {
	return fmt.Sprintf("%.2f KB", float64(size)/1024)
}

// MB renders a byte count as megabytes with two decimals, without a unit.
func MB(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/1024/1024)
}

// OrDefault returns s, or def when s is blank.
func OrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// StatusClass turns a server status string into a css modifier,
// e.g. "In Progress" becomes "in-progress".
func StatusClass(status string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), " ", "-")
}

// AbsURL resolves a server-relative path such as /uploads/a.jpg against
// base. Absolute URLs and empty strings are returned unchanged.
func AbsURL(base, u string) string {
	if u == "" || base == "" || !strings.HasPrefix(u, "/") || strings.HasPrefix(u, "//") {
		return u
	}
	return strings.TrimRight(base, "/") + u
}
