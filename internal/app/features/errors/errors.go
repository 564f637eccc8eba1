// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the view model for full-page errors.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// ErrorLogger logs handler failures and shows the user a friendly message.
// HTMX requests get an alert fragment retargeted at #alerts; normal
// requests get a full error page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

// LogServerError logs err at error level and responds with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.respond(w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs err at warn level and responds with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.respond(w, r, http.StatusBadRequest, userMsg, backURL)
}

func (e *ErrorLogger) respond(w http.ResponseWriter, r *http.Request, status int, userMsg, backURL string) {
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Retarget", "#alerts")
		w.Header().Set("HX-Reswap", "innerHTML")
		alert.Write(w, alert.Error(userMsg))
		return
	}

	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/dashboard")
	}
	vm := viewdata.NewBaseVM(r, models.SectionDashboard)
	vm.Title = http.StatusText(status)
	vm.BackURL = backURL

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", pageData{BaseVM: vm, Message: userMsg})
}

// NotFound renders a not-found page for unknown routes.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, r *http.Request) {
	e.respond(w, r, http.StatusNotFound, "Page not found.", "/dashboard")
}
