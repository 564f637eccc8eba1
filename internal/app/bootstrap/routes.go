// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	analyticsfeature "github.com/dalemusser/gardenadmin/internal/app/features/analytics"
	dashboardfeature "github.com/dalemusser/gardenadmin/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	healthfeature "github.com/dalemusser/gardenadmin/internal/app/features/health"
	mediafeature "github.com/dalemusser/gardenadmin/internal/app/features/media"
	notificationsfeature "github.com/dalemusser/gardenadmin/internal/app/features/notifications"
	settingsfeature "github.com/dalemusser/gardenadmin/internal/app/features/settings"
	stafffeature "github.com/dalemusser/gardenadmin/internal/app/features/staff"
	studentsfeature "github.com/dalemusser/gardenadmin/internal/app/features/students"
	tasksfeature "github.com/dalemusser/gardenadmin/internal/app/features/tasks"
	auditstore "github.com/dalemusser/gardenadmin/internal/app/store/audit"
	settingsstore "github.com/dalemusser/gardenadmin/internal/app/store/settings"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/uistate"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It boots the template engine, applies
// CSRF protection, and mounts one feature router per dashboard section.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	ui, err := uistate.New(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("ui state store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	audits := auditstore.New(deps.MongoDatabase)
	auditLog := auditlog.New(audits, logger, appCfg.AuditLog)
	mediaBase := deps.Garden.BaseURL()

	r := chi.NewRouter()

	// Health and metrics sit outside CSRF protection.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Garden, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(r chi.Router) {
		if !secure {
			r.Use(plaintextCSRF)
		}
		r.Use(csrf.Protect(csrfKey(appCfg.SessionKey),
			csrf.Secure(secure),
			csrf.Path("/"),
			csrf.CookieName(appCfg.SessionName+"-csrf"),
			csrf.ErrorHandler(csrfFailure(logger)),
		))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		})

		dashboardHandler := dashboardfeature.NewHandler(deps.Board, logger)
		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		tasksHandler := tasksfeature.NewHandler(deps.Board, deps.Garden, mediaBase, auditLog, errLog, logger)
		r.Mount("/tasks", tasksfeature.Routes(tasksHandler))

		staffHandler := stafffeature.NewHandler(deps.Board, deps.Garden, ui, mediaBase, auditLog, errLog, logger)
		r.Mount("/staff", stafffeature.Routes(staffHandler))

		studentsHandler := studentsfeature.NewHandler(deps.Board, logger)
		r.Mount("/students", studentsfeature.Routes(studentsHandler))

		mediaHandler := mediafeature.NewHandler(deps.Board, deps.Garden, mediaBase, auditLog, errLog, logger)
		r.Mount("/media", mediafeature.Routes(mediaHandler))

		analyticsHandler := analyticsfeature.NewHandler(deps.Board, deps.Garden, auditLog, errLog, logger)
		r.Mount("/analytics", analyticsfeature.Routes(analyticsHandler))

		notificationsHandler := notificationsfeature.NewHandler(deps.Board, deps.Garden, auditLog, logger)
		r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

		settingsHandler := settingsfeature.NewHandler(settingsstore.New(deps.MongoDatabase), audits, deps.Garden,
			deps.Board, deps.Refresh, auditLog, errLog, logger)
		r.Route("/settings", settingsHandler.MountRoutes)
	})

	r.NotFound(errLog.NotFound)

	return r, nil
}

// csrfKey derives the 32-byte CSRF key from the session key. A blank
// session key gets a random key, so tokens do not survive a restart.
func csrfKey(sessionKey string) []byte {
	if sessionKey == "" {
		return securecookie.GenerateRandomKey(32)
	}
	sum := sha256.Sum256([]byte("csrf:" + sessionKey))
	return sum[:]
}

// plaintextCSRF marks requests as plain HTTP so the origin check accepts
// http:// referers in dev.
func plaintextCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func csrfFailure(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warn("csrf check failed",
			zap.String("path", r.URL.Path),
			zap.Error(csrf.FailureReason(r)))
		http.Error(w, "Forbidden - invalid CSRF token", http.StatusForbidden)
	})
}
