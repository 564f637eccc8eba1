// internal/app/features/settings/handler.go
package settings

import (
	"context"

	uierrors "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	"github.com/dalemusser/gardenadmin/internal/app/store/audit"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/autorefresh"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"go.uber.org/zap"
)

// Store persists the dashboard settings.
type Store interface {
	Get(ctx context.Context) (models.DashboardSettings, error)
	Save(ctx context.Context, s models.DashboardSettings) error
}

// AuditReader lists recent admin actions.
type AuditReader interface {
	GetRecent(ctx context.Context, limit int64) ([]audit.Event, error)
}

// API is the part of the Garden client used by the settings page.
type API interface {
	SystemStats(ctx context.Context) (*models.SystemStats, error)
	ProcessQueue(ctx context.Context) (*models.QueueProcessResult, error)
}

// Handler owns all Settings handlers.
type Handler struct {
	Store    Store
	Events   AuditReader
	API      API
	Board    *board.Board
	Refresh  *autorefresh.Controller
	AuditLog *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a Handler. events may be nil when the audit trail
// is not persisted.
func NewHandler(store Store, events AuditReader, api API, b *board.Board, refresh *autorefresh.Controller, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Events:   events,
		API:      api,
		Board:    b,
		Refresh:  refresh,
		AuditLog: audit,
		ErrLog:   errLog,
		Log:      logger,
	}
}
