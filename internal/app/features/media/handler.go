// internal/app/features/media/handler.go
package media

import (
	"context"

	uierrors "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"go.uber.org/zap"
)

// API deletes old media on the Garden server.
type API interface {
	CleanupMedia(ctx context.Context, days int) (*models.CleanupResult, error)
}

// Handler owns the media gallery and media cleanup.
type Handler struct {
	Board     *board.Board
	API       API
	MediaBase string
	AuditLog  *auditlog.Logger
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(b *board.Board, api API, mediaBase string, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Board:     b,
		API:       api,
		MediaBase: mediaBase,
		AuditLog:  audit,
		ErrLog:    errLog,
		Log:       logger,
	}
}
