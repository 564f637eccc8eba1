package staff_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/features/staff"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

type fakeTasksAPI struct {
	calls []string
	tasks []models.Task
	err   error
}

func (f *fakeTasksAPI) StaffTasks(ctx context.Context, staffID, status string) (*models.StaffTasks, error) {
	f.calls = append(f.calls, staffID+":"+status)
	if f.err != nil {
		return nil, f.err
	}
	return &models.StaffTasks{Tasks: f.tasks, Filter: status}, nil
}

func TestModal_ZeroValueIsClosed(t *testing.T) {
	var m staff.Modal
	if m.IsOpen() {
		t.Error("zero modal should be closed")
	}
}

func TestModal_OpenStartsPendingAndLoading(t *testing.T) {
	m := staff.Modal{}.Open("s1", "Kumar")
	if m.State != staff.ModalLoading {
		t.Errorf("State = %q, want loading", m.State)
	}
	if m.Filter != staff.FilterPending {
		t.Errorf("Filter = %q, want pending", m.Filter)
	}
	if m.StaffID != "s1" || m.StaffName != "Kumar" {
		t.Errorf("identity = %q/%q", m.StaffID, m.StaffName)
	}
}

func TestModal_SetFilterOnClosedIsIgnored(t *testing.T) {
	m := staff.Modal{}.Close()
	next := m.SetFilter(staff.FilterCompleted)
	if next.IsOpen() || next.Filter != "" {
		t.Errorf("closed modal changed: %+v", next)
	}
}

func TestModal_SetFilterNormalizes(t *testing.T) {
	m := staff.Modal{}.Open("s1", "Kumar")
	if got := m.SetFilter("bogus").Filter; got != staff.FilterPending {
		t.Errorf("Filter = %q, want pending", got)
	}
	if got := m.SetFilter(staff.FilterAll).Filter; got != staff.FilterAll {
		t.Errorf("Filter = %q, want all", got)
	}
}

func TestModal_LoadSuccess(t *testing.T) {
	api := &fakeTasksAPI{tasks: []models.Task{{TaskID: "t1"}}}
	m := staff.Modal{}.Open("s1", "Kumar").SetFilter(staff.FilterCompleted)

	m = m.Load(context.Background(), api)

	if m.State != staff.ModalLoaded {
		t.Fatalf("State = %q, want loaded", m.State)
	}
	if len(m.Tasks) != 1 {
		t.Errorf("Tasks = %d, want 1", len(m.Tasks))
	}
	if len(api.calls) != 1 || api.calls[0] != "s1:completed" {
		t.Errorf("calls = %v", api.calls)
	}
}

func TestModal_LoadEmptyIsLoaded(t *testing.T) {
	m := staff.Modal{}.Open("s1", "Kumar").Load(context.Background(), &fakeTasksAPI{})
	if m.State != staff.ModalLoaded || m.Tasks == nil || len(m.Tasks) != 0 {
		t.Errorf("modal = %+v, want loaded with empty list", m)
	}
}

func TestModal_LoadFailureDropsTasks(t *testing.T) {
	m := staff.Modal{}.Open("s1", "Kumar").Loaded([]models.Task{{TaskID: "t1"}})

	m = m.SetFilter(staff.FilterAll).Load(context.Background(), &fakeTasksAPI{err: errors.New("boom")})

	if m.State != staff.ModalError {
		t.Fatalf("State = %q, want error", m.State)
	}
	if m.Message != staff.ModalErrorMessage {
		t.Errorf("Message = %q", m.Message)
	}
	if m.Tasks != nil {
		t.Errorf("Tasks = %v, want none", m.Tasks)
	}
}

func TestModal_LoadOnClosedSkipsAPI(t *testing.T) {
	api := &fakeTasksAPI{}
	staff.Modal{}.Load(context.Background(), api)
	if len(api.calls) != 0 {
		t.Errorf("closed modal called the API: %v", api.calls)
	}
}
