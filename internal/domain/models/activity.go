// internal/domain/models/activity.go
package models

// Activity is one entry of the recent activity feed.
type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Icon        string `json:"icon"`
}

// QueueStatus is the /queue/status response. Only the length is shown on
// the dashboard; the rest is kept for the queue panel.
type QueueStatus struct {
	QueueLength        int     `json:"queueLength"`
	AverageWaitTime    float64 `json:"averageWaitTime"`
	OldestTaskWaitTime float64 `json:"oldestTaskWaitTime"`
}

// QueueProcessResult is returned after assigning queued tasks.
type QueueProcessResult struct {
	Message       string `json:"message"`
	TasksAssigned int    `json:"tasksAssigned"`
}

// Summary holds the stat cards shown at the top of the dashboard.
// Every value defaults to zero when its source call fails.
type Summary struct {
	TotalStaff     int
	TotalTasks     int
	PendingTasks   int
	CompletedTasks int
	QueuedTasks    int
	TotalStudents  int
}
