// internal/domain/models/task.go
package models

// Canonical task status values reported by the Garden API.
// The server may return other strings; those are displayed as-is.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
	TaskStatusQueued    = "queued"
)

// Task is a garden issue reported by a student and worked by a staff member.
// Timestamps are kept as the ISO strings the API returns; use ParseTime to
// turn them into time.Time for display.
type Task struct {
	TaskID         string `json:"taskId"`
	AICaption      string `json:"aiCaption"`
	StudentCaption string `json:"studentCaption"`
	Status         string `json:"status"`
	AssignedTo     string `json:"assignedTo"`
	StudentName    string `json:"studentName"`
	RegisterNumber string `json:"registerNumber"`
	Location       string `json:"location"`
	CreatedAt      string `json:"createdAt"`
	CompletedAt    string `json:"completedAt"`

	// Staff task listings carry flat image URLs.
	ImageURL           string `json:"imageUrl,omitempty"`
	CompletionImageURL string `json:"completionImageUrl,omitempty"`

	// Task detail carries nested image references.
	Images             *TaskImages `json:"images,omitempty"`
	HasOriginalImage   bool        `json:"hasOriginalImage,omitempty"`
	HasCompletionImage bool        `json:"hasCompletionImage,omitempty"`
}

// TaskImages holds the before/after photos of a task detail.
type TaskImages struct {
	Original   TaskImage `json:"original"`
	Completion TaskImage `json:"completion"`
}

// TaskImage is a single image reference.
type TaskImage struct {
	URL     string `json:"url"`
	Type    string `json:"type,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// OriginalImageURL returns the student's report photo, if any.
func (t Task) OriginalImageURL() string {
	if t.Images != nil && t.HasOriginalImage {
		return t.Images.Original.URL
	}
	return t.ImageURL
}

// CompletionPhotoURL returns the staff completion photo, if any.
func (t Task) CompletionPhotoURL() string {
	if t.Images != nil && t.HasCompletionImage {
		return t.Images.Completion.URL
	}
	return t.CompletionImageURL
}

// IsPending reports whether the task can still be marked complete.
func (t Task) IsPending() bool {
	return t.Status == TaskStatusPending
}

// UnassignedTask is a task with no (valid) staff assignment.
type UnassignedTask struct {
	Task
	Reason string `json:"reason"`
}

// ReassignResult is the API response to a task reassignment.
type ReassignResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TaskID       string `json:"taskId"`
	OldStaffID   string `json:"oldStaffId"`
	NewStaffID   string `json:"newStaffId"`
	NewStaffName string `json:"newStaffName"`
}
