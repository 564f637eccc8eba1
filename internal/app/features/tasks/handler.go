// internal/app/features/tasks/handler.go
package tasks

import (
	"context"

	uierrors "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"go.uber.org/zap"
)

// API is the part of the Garden client the tasks feature calls directly.
// List data comes from the board.
type API interface {
	Task(ctx context.Context, taskID string) (*models.Task, error)
	UnassignedTasks(ctx context.Context) ([]models.UnassignedTask, error)
	MarkCompleted(ctx context.Context, taskID, staffID string) (*models.ActionResult, error)
	ReassignTask(ctx context.Context, taskID, staffID string) (*models.ReassignResult, error)
}

// Handler owns the task list, detail, export and task actions.
type Handler struct {
	Board *board.Board
	API   API
	// MediaBase prefixes server-relative image paths.
	MediaBase string
	AuditLog  *auditlog.Logger
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs a tasks Handler.
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
