// internal/app/features/staff/modal.go
package staff

import (
	"context"

	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// ModalState is the lifecycle of the staff tasks modal.
type ModalState string

const (
	ModalClosed  ModalState = "closed"
	ModalLoading ModalState = "loading"
	ModalLoaded  ModalState = "loaded"
	ModalError   ModalState = "error"
)

// Modal filters.
const (
	FilterPending   = models.TaskStatusPending
	FilterCompleted = models.TaskStatusCompleted
	FilterAll       = "all"
)

// ModalErrorMessage is shown when the staff tasks cannot be loaded.
const ModalErrorMessage = "Failed to load tasks"

// TasksAPI fetches the tasks of one staff member.
type TasksAPI interface {
	StaffTasks(ctx context.Context, staffID, status string) (*models.StaffTasks, error)
}

// Modal is the staff tasks modal. It is a value: every transition returns
// the next state and leaves the receiver untouched. The zero value is closed.
type Modal struct {
	State     ModalState
	StaffID   string
	StaffName string
	Filter    string
	Tasks     []models.Task
	Message   string
}

// NormalizeFilter maps anything but completed or all to pending.
func NormalizeFilter(f string) string {
	switch f {
	case FilterCompleted, FilterAll:
		return f
	}
	return FilterPending
}

// IsOpen reports whether the modal is showing.
func (m Modal) IsOpen() bool { return m.State != "" && m.State != ModalClosed }

// Open shows the modal for a staff member with the pending filter.
func (m Modal) Open(staffID, staffName string) Modal {
	return Modal{
		State:     ModalLoading,
		StaffID:   staffID,
		StaffName: staffName,
		Filter:    FilterPending,
	}
}

// SetFilter changes the filter of an open modal and marks it loading.
// A closed modal ignores it.
func (m Modal) SetFilter(f string) Modal {
	if !m.IsOpen() {
		return m
	}
	m.Filter = NormalizeFilter(f)
	m.State = ModalLoading
	m.Message = ""
	return m
}

// Loaded replaces the task list.
func (m Modal) Loaded(tasks []models.Task) Modal {
	if !m.IsOpen() {
		return m
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	m.State = ModalLoaded
	m.Tasks = tasks
	m.Message = ""
	return m
}

// Failed switches to the error state. The previous list is dropped.
func (m Modal) Failed() Modal {
	if !m.IsOpen() {
		return m
	}
	m.State = ModalError
	m.Tasks = nil
	m.Message = ModalErrorMessage
	return m
}

// Close hides the modal.
func (m Modal) Close() Modal {
	return Modal{State: ModalClosed}
}

// Load fetches the tasks for the current staff member and filter.
// It returns the loaded or error state; a closed modal is returned as is.
func (m Modal) Load(ctx context.Context, api TasksAPI) Modal {
	if !m.IsOpen() {
		return m
	}
	res, err := api.StaffTasks(ctx, m.StaffID, m.Filter)
	if err != nil {
		return m.Failed()
	}
	return m.Loaded(res.Tasks)
}
