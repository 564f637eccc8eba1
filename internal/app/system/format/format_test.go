package format_test

import (
	"testing"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/format"
)

func TestDateTime(t *testing.T) {
	if got := format.DateTime(time.Time{}, "Unknown"); got != "Unknown" {
		t.Errorf("DateTime(zero) = %q, want Unknown", got)
	}
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)
	if got, want := format.DateTime(ts, "Unknown"), "3/5/2024, 2:07:09 PM"; got != want {
		t.Errorf("DateTime = %q, want %q", got, want)
	}
}

func TestClock(t *testing.T) {
	if got := format.Clock(time.Time{}); got != "Never" {
		t.Errorf("Clock(zero) = %q, want Never", got)
	}
	ts := time.Date(2024, 3, 5, 9, 1, 2, 0, time.Local)
	if got, want := format.Clock(ts), "9:01:02 AM"; got != want {
		t.Errorf("Clock = %q, want %q", got, want)
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		size   int64
		kb, mb string
	}{
		{0, "0.00 KB", "0.00"},
		{2048, "2.00 KB", "0.00"},
		{1536, "1.50 KB", "0.00"},
		{5 * 1024 * 1024, "5120.00 KB", "5.00"},
	}
	for _, tt := range tests {
		if got := format.KB(tt.size); got != tt.kb {
			t.Errorf("KB(%d) = %q, want %q", tt.size, got, tt.kb)
		}
		if got := format.MB(tt.size); got != tt.mb {
			t.Errorf("MB(%d) = %q, want %q", tt.size, got, tt.mb)
		}
	}
}

func TestOrDefault(t *testing.T) {
	if got := format.OrDefault("  ", "N/A"); got != "N/A" {
		t.Errorf("OrDefault(blank) = %q", got)
	}
	if got := format.OrDefault("leaf", "N/A"); got != "leaf" {
		t.Errorf("OrDefault(leaf) = %q", got)
	}
}

func TestStatusClass(t *testing.T) {
	if got := format.StatusClass("In Progress"); got != "in-progress" {
		t.Errorf("StatusClass = %q", got)
	}
}

func TestAbsURL(t *testing.T) {
	tests := []struct{ base, u, want string }{
		{"http://garden:5000", "/uploads/a.jpg", "http://garden:5000/uploads/a.jpg"},
		{"http://garden:5000/", "/uploads/a.jpg", "http://garden:5000/uploads/a.jpg"},
		{"http://garden:5000", "https://cdn.example/a.jpg", "https://cdn.example/a.jpg"},
		{"http://garden:5000", "", ""},
		{"", "/uploads/a.jpg", "/uploads/a.jpg"},
	}
	for _, tt := range tests {
		if got := format.AbsURL(tt.base, tt.u); got != tt.want {
			t.Errorf("AbsURL(%q, %q) = %q, want %q", tt.base, tt.u, got, tt.want)
		}
	}
}
