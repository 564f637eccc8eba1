// internal/app/system/gardenapi/reads.go
package gardenapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// Workload returns per-staff task counts and system totals.
func (c *Client) Workload(ctx context.Context) (*models.Workload, error) {
	var out models.Workload
	if err := c.getJSON(ctx, c.baseURL, "/staff/workload", nil, &out, "workload"); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueueStatus returns the unassigned-task queue summary.
func (c *Client) QueueStatus(ctx context.Context) (*models.QueueStatus, error) {
	var out models.QueueStatus
	if err := c.getJSON(ctx, c.baseURL, "/queue/status", nil, &out, "queue_status"); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllTasks returns every task. It is served by the admin server when available.
func (c *Client) AllTasks(ctx context.Context) ([]models.Task, error) {
	var out struct {
		Tasks []models.Task `json:"tasks"`
		Total int           `json:"total"`
	}
	if err := c.getJSON(ctx, c.AdminBase(), "/admin/all_tasks", nil, &out, "all_tasks"); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// Task returns one task with its image references.
func (c *Client) Task(ctx context.Context, taskID string) (*models.Task, error) {
	var out models.Task
	path := "/task/" + url.PathEscape(taskID)
	if err := c.getJSON(ctx, c.baseURL, path, nil, &out, "task"); err != nil {
		return nil, err
	}
	if out.TaskID == "" {
		out.TaskID = taskID
	}
	return &out, nil
}

// RecentActivity returns the latest activity feed entries.
func (c *Client) RecentActivity(ctx context.Context) ([]models.Activity, error) {
	var out struct {
		Activities []models.Activity `json:"activities"`
	}
	if err := c.getJSON(ctx, c.baseURL, "/admin/recent_activity", nil, &out, "recent_activity"); err != nil {
		return nil, err
	}
	return out.Activities, nil
}

// AllStudents returns the students derived from reported tasks.
func (c *Client) AllStudents(ctx context.Context) ([]models.Student, error) {
	var out struct {
		Students []models.Student `json:"students"`
		Total    int              `json:"total"`
	}
	if err := c.getJSON(ctx, c.baseURL, "/admin/all_students", nil, &out, "all_students"); err != nil {
		return nil, err
	}
	return out.Students, nil
}

// AllStaff returns every staff member with task counts.
func (c *Client) AllStaff(ctx context.Context) ([]models.StaffMember, error) {
	var out struct {
		Staff []models.StaffMember `json:"staff"`
		Total int                  `json:"total"`
	}
	if err := c.getJSON(ctx, c.baseURL, "/admin/all_staff", nil, &out, "all_staff"); err != nil {
		return nil, err
	}
	return out.Staff, nil
}

// StaffTasks returns the tasks assigned to one staff member. status is
// pending, completed or all; empty means pending.
func (c *Client) StaffTasks(ctx context.Context, staffID, status string) (*models.StaffTasks, error) {
	if status == "" {
		status = models.TaskStatusPending
	}
	var out models.StaffTasks
	path := "/admin/staff/" + url.PathEscape(staffID) + "/tasks"
	q := url.Values{"status": {status}}
	if err := c.getJSON(ctx, c.baseURL, path, q, &out, "staff_tasks"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnassignedTasks returns open tasks with no valid staff assignment.
func (c *Client) UnassignedTasks(ctx context.Context) ([]models.UnassignedTask, error) {
	var out struct {
		UnassignedTasks []models.UnassignedTask `json:"unassignedTasks"`
		Total           int                     `json:"total"`
	}
	if err := c.getJSON(ctx, c.baseURL, "/admin/unassigned_tasks", nil, &out, "unassigned_tasks"); err != nil {
		return nil, err
	}
	return out.UnassignedTasks, nil
}

// MediaGallery returns uploaded, processed and completion files.
func (c *Client) MediaGallery(ctx context.Context) ([]models.MediaItem, error) {
	var out struct {
		Media []models.MediaItem `json:"media"`
		Total int                `json:"total"`
	}
	if err := c.getJSON(ctx, c.baseURL, "/admin/media_gallery", nil, &out, "media_gallery"); err != nil {
		return nil, err
	}
	return out.Media, nil
}

// Analytics returns the summary for a time range.
func (c *Client) Analytics(ctx context.Context, rng string) (*models.Analytics, error) {
	var out models.Analytics
	q := url.Values{"range": {rng}}
	if err := c.getJSON(ctx, c.baseURL, "/admin/analytics", q, &out, "analytics"); err != nil {
		return nil, err
	}
	if out.Range == "" {
		out.Range = rng
	}
	return &out, nil
}

// SystemStats returns database and storage totals.
func (c *Client) SystemStats(ctx context.Context) (*models.SystemStats, error) {
	var out models.SystemStats
	if err := c.getJSON(ctx, c.AdminBase(), "/admin/system_stats", nil, &out, "system_stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report is a generated report body. The caller must Close it.
type Report struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Close releases the report body.
func (r *Report) Close() error {
	if r == nil || r.Body == nil {
		return nil
	}
	return r.Body.Close()
}

// GenerateReport asks the server to render a PDF report for rng and returns
// the body unread.
func (c *Client) GenerateReport(ctx context.Context, rng string) (*Report, error) {
	q := url.Values{"range": {rng}}
	resp, err := c.send(ctx, http.MethodGet, c.baseURL, "/admin/generate_report", q, nil, "generate_report")
	if err != nil {
		return nil, err
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/pdf"
	}
	if strings.HasPrefix(ct, "application/json") {
		// A 200 with JSON is an error payload, not a report.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		return nil, fmt.Errorf("garden api generate_report: %w", newAPIError("generate_report", resp.StatusCode, b))
	}
	return &Report{Body: resp.Body, ContentType: ct, Size: resp.ContentLength}, nil
}
