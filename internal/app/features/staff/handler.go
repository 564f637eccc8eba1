// internal/app/features/staff/handler.go
package staff

import (
	"context"

	uierrors "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/uistate"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"go.uber.org/zap"
)

// API is the part of the Garden client the staff feature calls directly.
type API interface {
	TasksAPI
	CreateStaff(ctx context.Context, staffID, name string) (*models.CreateStaffResult, error)
	SetStaffActive(ctx context.Context, staffID string, active bool) (*models.ActionResult, error)
}

// Handler owns staff management and the staff tasks modal.
type Handler struct {
	Board     *board.Board
	API       API
	UIState   *uistate.Store
	MediaBase string
	AuditLog  *auditlog.Logger
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs a staff Handler.
func NewHandler(b *board.Board, api API, ui *uistate.Store, mediaBase string, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Board:     b,
		API:       api,
		UIState:   ui,
		MediaBase: mediaBase,
		AuditLog:  audit,
		ErrLog:    errLog,
		Log:       logger,
	}
}
