// internal/domain/models/staff.go
package models

import "encoding/json"

// TaskCounts aggregates a staff member's assigned tasks.
type TaskCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// StaffMember is a garden staff account. The authoritative copy lives on
// the Garden server; the dashboard only toggles Active through the API.
type StaffMember struct {
	StaffID    string     `json:"staffId"`
	Name       string     `json:"name"`
	Active     bool       `json:"active"`
	TaskCounts TaskCounts `json:"taskCounts"`
	LastLogin  string     `json:"lastLogin"`
	CreatedAt  string     `json:"createdAt,omitempty"`
}

// UnmarshalJSON accepts both the /admin/all_staff shape (nested taskCounts)
// and the legacy /staff/workload shape (flat totalTasks/pendingTasks/...).
// A missing "active" flag means active, matching the server default.
func (s *StaffMember) UnmarshalJSON(b []byte) error {
	var raw struct {
		StaffID        string      `json:"staffId"`
		Name           string      `json:"name"`
		Active         *bool       `json:"active"`
		TaskCounts     *TaskCounts `json:"taskCounts"`
		LastLogin      *string     `json:"lastLogin"`
		CreatedAt      *string     `json:"createdAt"`
		TotalTasks     int         `json:"totalTasks"`
		PendingTasks   int         `json:"pendingTasks"`
		CompletedTasks int         `json:"completedTasks"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*s = StaffMember{
		StaffID: raw.StaffID,
		Name:    raw.Name,
		Active:  raw.Active == nil || *raw.Active,
	}
	if raw.TaskCounts != nil {
		s.TaskCounts = *raw.TaskCounts
	} else {
		s.TaskCounts = TaskCounts{
			Total:     raw.TotalTasks,
			Pending:   raw.PendingTasks,
			Completed: raw.CompletedTasks,
		}
	}
	if raw.LastLogin != nil {
		s.LastLogin = *raw.LastLogin
	}
	if raw.CreatedAt != nil {
		s.CreatedAt = *raw.CreatedAt
	}
	return nil
}

// StaffTasks is the /admin/staff/{id}/tasks response.
type StaffTasks struct {
	Staff  StaffMember `json:"staff"`
	Tasks  []Task      `json:"tasks"`
	Total  int         `json:"total"`
	Filter string      `json:"filter"`
}

// Workload is the /staff/workload response used by the stats cards.
type Workload struct {
	Workload               []StaffMember `json:"workload"`
	TotalStaff             int           `json:"totalStaff"`
	ActiveStaff            int           `json:"activeStaff"`
	TotalTasksInSystem     int           `json:"totalTasksInSystem"`
	TotalPendingInSystem   int           `json:"totalPendingInSystem"`
	TotalCompletedInSystem int           `json:"totalCompletedInSystem"`
}

// CreateStaffResult is returned after a staff account is created.
type CreateStaffResult struct {
	Message         string `json:"message"`
	StaffID         string `json:"staffId"`
	DefaultPassword string `json:"defaultPassword"`
}

// ActionResult is the generic {"message": ...} acknowledgement.
type ActionResult struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
	TaskID  string `json:"taskId,omitempty"`
}
