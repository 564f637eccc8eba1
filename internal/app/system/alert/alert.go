// Package alert builds the one-line feedback fragments returned by admin
// actions and writes them with the HTMX events that reload affected panels.
package alert

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"github.com/dalemusser/waffle/pantry/templates"
)

// Kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// TriggerHeader carries the client-side events raised by a response.
const TriggerHeader = "HX-Trigger"

// Client events. Panels listen for these with hx-trigger="<event> from:body".
const (
	EventRefreshed    = "board-refreshed"
	EventStatsChanged = "stats-changed"
	EventTasksChanged = "tasks-changed"
	EventStaffChanged = "staff-changed"
	EventMediaChanged = "media-changed"

	EventNotificationSent = "notification-sent"
	EventSettingsSaved    = "settings-saved"
)

// Alert is a feedback message.
type Alert struct {
	Kind    string
	Message string
}

// IsError reports whether a is an error alert.
func (a Alert) IsError() bool { return a.Kind == KindError }

// Success returns a success alert.
func Success(msg string) Alert { return Alert{Kind: KindSuccess, Message: msg} }

// Error returns an error alert.
func Error(msg string) Alert { return Alert{Kind: KindError, Message: msg} }

// IsNetwork reports whether err is a transport failure rather than an
// HTTP status from the Garden API.
func IsNetwork(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *gardenapi.APIError
	return !errors.As(err, &apiErr)
}

// Failure maps a failed API call to an alert. Transport failures become
// "Network error: ..."; status failures use onStatus.
func Failure(err error, onStatus string) Alert {
	if IsNetwork(err) {
		return Error("Network error: " + err.Error())
	}
	return Error(onStatus)
}

// ServerError maps a failed API call to "Error: <server message>", using
// fallback when the server sent none.
func ServerError(err error, fallback string) Alert {
	if IsNetwork(err) {
		return Error("Network error: " + err.Error())
	}
	var apiErr *gardenapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return Error("Error: " + apiErr.Message)
	}
	return Error("Error: " + fallback)
}

// SetTrigger raises the given client events on the response.
func SetTrigger(w http.ResponseWriter, events ...string) {
	if len(events) == 0 {
		return
	}
	w.Header().Set(TriggerHeader, strings.Join(events, ", "))
}

// Write renders a as the "alert" snippet and raises events. Alerts are
// always sent with status 200 so HTMX swaps them in.
func Write(w http.ResponseWriter, a Alert, events ...string) {
	if !a.IsError() {
		SetTrigger(w, events...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.RenderSnippet(w, "alert", a)
}
