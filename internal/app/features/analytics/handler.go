// internal/app/features/analytics/handler.go
package analytics

import (
	"context"
	"time"

	uierrors "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"go.uber.org/zap"
)

// Reporter renders PDF reports.
type Reporter interface {
	GenerateReport(ctx context.Context, rng string) (*gardenapi.Report, error)
}

// Handler owns the analytics summary and report downloads.
type Handler struct {
	Board    *board.Board
	Reports  Reporter
	AuditLog *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger

	// Now stamps report filenames.
	Now func() time.Time
}

func NewHandler(b *board.Board, reports Reporter, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Board:    b,
		Reports:  reports,
		AuditLog: audit,
		ErrLog:   errLog,
		Log:      logger,
		Now:      time.Now,
	}
}
