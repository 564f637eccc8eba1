// internal/domain/models/analytics.go
package models

// Time ranges accepted by the analytics and report endpoints.
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeAll   = "all"
)

// Ranges lists the valid analytics ranges in display order.
var Ranges = []string{RangeToday, RangeWeek, RangeMonth, RangeAll}

// IsValidRange reports whether r is a known analytics range.
func IsValidRange(r string) bool {
	for _, v := range Ranges {
		if v == r {
			return true
		}
	}
	return false
}

// Analytics is the /admin/analytics response.
type Analytics struct {
	TotalTasks      int     `json:"totalTasks"`
	CompletedTasks  int     `json:"completedTasks"`
	PendingTasks    int     `json:"pendingTasks"`
	CompletionRate  float64 `json:"completionRate"`
	AvgResponseTime float64 `json:"avgResponseTime"`
	ActiveUsers     int     `json:"activeUsers"`
	ActiveStudents  int     `json:"activeStudents"`
	ActiveStaff     int     `json:"activeStaff"`
	Range           string  `json:"range"`
}

// SystemStats is the /admin/system_stats response.
type SystemStats struct {
	Database struct {
		TotalTasks    int `json:"totalTasks"`
		TotalStudents int `json:"totalStudents"`
		TotalStaff    int `json:"totalStaff"`
	} `json:"database"`
	Storage struct {
		TotalFiles  int     `json:"totalFiles"`
		TotalSize   int64   `json:"totalSize"`
		TotalSizeMB float64 `json:"totalSizeMB"`
	} `json:"storage"`
}
