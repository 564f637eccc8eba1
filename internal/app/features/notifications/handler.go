// internal/app/features/notifications/handler.go
package notifications

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Alert messages.
const (
	MsgMissingFields = "Please fill in title and message"
	MsgSent          = "Notification sent successfully"
	MsgFailed        = "Failed to send notification"
	MsgNeedUser      = "Please enter a user ID"
)

// API sends push notifications.
type API interface {
	SendNotification(ctx context.Context, req models.NotificationRequest) (*models.NotificationResult, error)
}

type Handler struct {
	API      API
	Board    *board.Board
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(b *board.Board, api API, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{API: api, Board: b, AuditLog: audit, Log: logger}
}

// TargetOption is a select option.
type TargetOption struct {
	Value string
	Label string
}

// Targets lists the audiences in display order.
var Targets = []TargetOption{
	{Value: models.NotifyAllStaff, Label: "All Staff"},
	{Value: models.NotifyAllStudents, Label: "All Students"},
	{Value: models.NotifySpecific, Label: "Specific User"},
}

func validTarget(t string) bool {
	for _, o := range Targets {
		if o.Value == t {
			return true
		}
	}
	return false
}

type pageData struct {
	viewdata.BaseVM
	Targets []TargetOption
}

// ServePage renders the broadcast form.
// GET /notifications
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionNotifications)
	templates.Render(w, r, "notifications_page", pageData{
		BaseVM:  viewdata.NewBaseVM(r, models.SectionNotifications),
		Targets: Targets,
	})
}

// BuildRequest validates the form and strips markup from the text.
// It returns an alert message when the form is incomplete.
func BuildRequest(target, userID, title, body string) (models.NotificationRequest, string) {
	req := models.NotificationRequest{
		Target: strings.TrimSpace(target),
		UserID: strings.TrimSpace(userID),
		Title:  htmlsanitize.PlainText(title),
		Body:   htmlsanitize.PlainText(body),
	}
	if !validTarget(req.Target) {
		req.Target = models.NotifyAllStaff
	}
	if req.Title == "" || req.Body == "" {
		return req, MsgMissingFields
	}
	if req.Target == models.NotifySpecific && req.UserID == "" {
		return req, MsgNeedUser
	}
	if req.Target != models.NotifySpecific {
		req.UserID = ""
	}
	return req, ""
}

// HandleSend broadcasts a notification.
// POST /notifications
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	req, invalid := BuildRequest(r.FormValue("target"), r.FormValue("userId"), r.FormValue("title"), r.FormValue("body"))
	if invalid != "" {
		alert.Write(w, alert.Error(invalid))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Action(), h.Log, "send notification")
	defer cancel()

	res, err := h.API.SendNotification(ctx, req)
	delivered := 0
	if res != nil {
		delivered = res.Success
	}
	h.AuditLog.NotificationSent(ctx, r, req.Target, req.UserID, req.Title, delivered, err)
	if err != nil {
		h.Log.Warn("send notification failed", zap.String("target", req.Target), zap.Error(err))
		if alert.IsNetwork(err) {
			alert.Write(w, alert.Error("Error: "+err.Error()))
			return
		}
		alert.Write(w, alert.Error(MsgFailed))
		return
	}

	h.Log.Info("notification sent",
		zap.String("target", req.Target),
		zap.Int("success", res.Success),
		zap.Int("failed", res.Failed))
	alert.Write(w, alert.Success(MsgSent), alert.EventNotificationSent)
}
