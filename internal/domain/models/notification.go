// internal/domain/models/notification.go
package models

// Notification targets understood by /admin/send_notification.
const (
	NotifyAllStaff    = "all_staff"
	NotifyAllStudents = "all_students"
	NotifySpecific    = "specific"
)

// NotificationRequest is the broadcast payload.
type NotificationRequest struct {
	Target string `json:"target"`
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// NotificationResult reports how many devices were reached.
type NotificationResult struct {
	Success int    `json:"success"`
	Failed  int    `json:"failed"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}
