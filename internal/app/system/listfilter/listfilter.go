// Package listfilter narrows in-memory snapshots for display.
//
// Both functions leave their input untouched and return a fresh slice,
// so a panel's snapshot can be shared between concurrent readers.
package listfilter

import (
	"slices"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// All is the filter value that selects every record.
const All = "all"

// ByField keeps the records whose field equals want exactly.
// An empty want or All returns a copy of the whole snapshot.
func ByField[T any](items []T, want string, field func(T) string) []T {
	if want == "" || want == All {
		return slices.Clone(items)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if field(it) == want {
			out = append(out, it)
		}
	}
	return out
}

// Search keeps the records where any of the given fields contains query,
// ignoring case. An empty (or all-space) query returns a copy of the whole
// snapshot.
func Search[T any](items []T, query string, fields ...func(T) string) []T {
	q := text.Fold(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(items)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if strings.Contains(text.Fold(f(it)), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
