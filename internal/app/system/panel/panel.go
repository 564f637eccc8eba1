// Package panel holds the load state of one dashboard container.
package panel

import "time"

// State is the lifecycle of a panel's most recent load.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Placeholder kinds.
const (
	KindEmpty   = "empty"
	KindError   = "error"
	KindLoading = "loading"
)

// Placeholder is the single message shown in place of a list.
type Placeholder struct {
	Kind    string
	Message string
}

// Empty returns an empty-list placeholder.
func Empty(msg string) *Placeholder { return &Placeholder{Kind: KindEmpty, Message: msg} }

// Failed returns an error placeholder.
func Failed(msg string) *Placeholder { return &Placeholder{Kind: KindError, Message: msg} }

// Loading returns a loading placeholder.
func Loading(msg string) *Placeholder { return &Placeholder{Kind: KindLoading, Message: msg} }

// Panel is a list snapshot plus the outcome of the load that produced it.
// Items always holds the last successful snapshot, even when State is
// StateError; renderers show Fallback instead of Items in that case.
type Panel[T any] struct {
	Items    []T
	State    State
	Fallback string
	Err      error
	LoadedAt time.Time
}

// Failed reports whether the last load failed.
func (p Panel[T]) Failed() bool { return p.State == StateError }

// Single is a panel holding one value instead of a list.
type Single[T any] struct {
	Value    *T
	State    State
	Fallback string
	Err      error
	LoadedAt time.Time
}

// Failed reports whether the last load failed.
func (p Single[T]) Failed() bool { return p.State == StateError }

// LoadingMessage is shown before a panel's first load completes.
const LoadingMessage = "Loading..."

// For returns the placeholder to show for p when rendering items, or nil
// when items should be shown. items is p.Items after any filtering.
func For[T any](p Panel[T], items []T, empty string) *Placeholder {
	switch {
	case p.Failed():
		return Failed(p.Fallback)
	case p.State == StateLoading:
		return Loading(LoadingMessage)
	case len(items) == 0:
		return Empty(empty)
	}
	return nil
}
