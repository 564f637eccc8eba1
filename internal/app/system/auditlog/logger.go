// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/gardenadmin/internal/app/store/audit"
	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"go.uber.org/zap"
)

// Logging modes.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off"
)

// Logger records admin actions to MongoDB (via audit.Store) and zap.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	mode   string
}

// New creates a new audit Logger. An unknown mode is treated as ModeAll.
// store may be nil when mode is ModeLog or ModeOff.
func New(store *audit.Store, zapLog *zap.Logger, mode string) *Logger {
	switch mode {
	case ModeAll, ModeDB, ModeLog, ModeOff:
	default:
		mode = ModeAll
	}
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{store: store, zapLog: zapLog, mode: mode}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.String("target", event.Target),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event according to the configured mode.
// A nil Logger is a no-op.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil || l.mode == ModeOff {
		return
	}
	if l.mode == ModeAll || l.mode == ModeLog {
		l.logToZap(event)
	}
	if (l.mode == ModeAll || l.mode == ModeDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// action builds and logs an event for an API call that returned err.
func (l *Logger) action(ctx context.Context, r *http.Request, category, eventType, target string, err error, details map[string]string) {
	if l == nil {
		return
	}
	e := audit.Event{
		Category:  category,
		EventType: eventType,
		Target:    target,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   err == nil,
		Details:   details,
	}
	if err != nil {
		e.FailureReason = gardenapi.ServerMessage(err)
	}
	l.Log(ctx, e)
}

// StaffCreated logs a staff account creation.
func (l *Logger) StaffCreated(ctx context.Context, r *http.Request, staffID, name string, err error) {
	l.action(ctx, r, audit.CategoryStaff, audit.EventStaffCreated, staffID, err, map[string]string{"name": name})
}

// StaffActiveChanged logs an activation or deactivation.
func (l *Logger) StaffActiveChanged(ctx context.Context, r *http.Request, staffID string, active bool, err error) {
	eventType := audit.EventStaffDeactivated
	if active {
		eventType = audit.EventStaffActivated
	}
	l.action(ctx, r, audit.CategoryStaff, eventType, staffID, err, nil)
}

// TaskCompleted logs a task marked complete from the dashboard.
func (l *Logger) TaskCompleted(ctx context.Context, r *http.Request, taskID string, err error) {
	l.action(ctx, r, audit.CategoryTasks, audit.EventTaskCompleted, taskID, err, nil)
}

// TaskReassigned logs a task moved to another staff member.
func (l *Logger) TaskReassigned(ctx context.Context, r *http.Request, taskID, oldStaffID, newStaffID string, err error) {
	l.action(ctx, r, audit.CategoryTasks, audit.EventTaskReassigned, taskID, err, map[string]string{
		"old_staff_id": oldStaffID,
		"new_staff_id": newStaffID,
	})
}

// QueueProcessed logs a queue assignment run.
func (l *Logger) QueueProcessed(ctx context.Context, r *http.Request, assigned int, err error) {
	l.action(ctx, r, audit.CategoryTasks, audit.EventQueueProcessed, "", err, map[string]string{
		"tasks_assigned": strconv.Itoa(assigned),
	})
}

// MediaCleanup logs a media cleanup run.
func (l *Logger) MediaCleanup(ctx context.Context, r *http.Request, days, filesDeleted int, err error) {
	l.action(ctx, r, audit.CategoryMedia, audit.EventMediaCleanup, "", err, map[string]string{
		"days":          strconv.Itoa(days),
		"files_deleted": strconv.Itoa(filesDeleted),
	})
}

// NotificationSent logs a broadcast.
func (l *Logger) NotificationSent(ctx context.Context, r *http.Request, target, userID, title string, delivered int, err error) {
	l.action(ctx, r, audit.CategoryNotifications, audit.EventNotificationSent, userID, err, map[string]string{
		"target":    target,
		"title":     title,
		"delivered": strconv.Itoa(delivered),
	})
}

// ReportGenerated logs a report download.
func (l *Logger) ReportGenerated(ctx context.Context, r *http.Request, rng string, err error) {
	l.action(ctx, r, audit.CategoryTasks, audit.EventReportGenerated, "", err, map[string]string{"range": rng})
}

// SettingsUpdated logs a settings save.
func (l *Logger) SettingsUpdated(ctx context.Context, r *http.Request, details map[string]string, err error) {
	l.action(ctx, r, audit.CategorySettings, audit.EventSettingsUpdated, "", err, details)
}
