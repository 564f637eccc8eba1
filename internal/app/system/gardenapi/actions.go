// internal/app/system/gardenapi/actions.go
package gardenapi

import (
	"context"
	"net/url"

	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// DefaultCleanupDays is the age threshold used when none is given.
const DefaultCleanupDays = 30

// CreateStaff creates a staff account with the server's default password.
func (c *Client) CreateStaff(ctx context.Context, staffID, name string) (*models.CreateStaffResult, error) {
	body := map[string]string{"staffId": staffID, "name": name}
	var out models.CreateStaffResult
	if err := c.postJSON(ctx, "/staff/create", body, &out, "create_staff"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStaffActive activates or deactivates a staff account.
func (c *Client) SetStaffActive(ctx context.Context, staffID string, active bool) (*models.ActionResult, error) {
	body := map[string]bool{"active": active}
	var out models.ActionResult
	path := "/staff/activate/" + url.PathEscape(staffID)
	if err := c.postJSON(ctx, path, body, &out, "staff_activate"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendNotification broadcasts a push notification.
func (c *Client) SendNotification(ctx context.Context, req models.NotificationRequest) (*models.NotificationResult, error) {
	var out models.NotificationResult
	if err := c.postJSON(ctx, "/admin/send_notification", req, &out, "send_notification"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CleanupMedia deletes media files older than days. Zero or negative days
// means DefaultCleanupDays.
func (c *Client) CleanupMedia(ctx context.Context, days int) (*models.CleanupResult, error) {
	if days <= 0 {
		days = DefaultCleanupDays
	}
	body := map[string]int{"days": days}
	var out models.CleanupResult
	if err := c.postJSON(ctx, "/admin/cleanup_media", body, &out, "cleanup_media"); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkCompleted marks a task completed on behalf of staffID. An empty
// staffID lets the server attribute it to garden staff in general.
func (c *Client) MarkCompleted(ctx context.Context, taskID, staffID string) (*models.ActionResult, error) {
	body := map[string]string{"taskId": taskID}
	if staffID != "" {
		body["staffId"] = staffID
	}
	var out models.ActionResult
	if err := c.postJSON(ctx, "/mark_completed", body, &out, "mark_completed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReassignTask moves a task to another staff member.
func (c *Client) ReassignTask(ctx context.Context, taskID, staffID string) (*models.ReassignResult, error) {
	body := map[string]string{"taskId": taskID, "staffId": staffID}
	var out models.ReassignResult
	if err := c.postJSON(ctx, "/admin/reassign_task", body, &out, "reassign_task"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProcessQueue assigns all queued tasks to staff.
func (c *Client) ProcessQueue(ctx context.Context) (*models.QueueProcessResult, error) {
	var out models.QueueProcessResult
	if err := c.postJSON(ctx, "/queue/process", struct{}{}, &out, "process_queue"); err != nil {
		return nil, err
	}
	return &out, nil
}
