// internal/app/features/tasks/views.go
package tasks

import (
	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/listfilter"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// EmptyMessage is shown when no task matches.
const EmptyMessage = "No tasks found"

// Option is a select option.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// StatusOptions returns the status filter choices with selected marked.
func StatusOptions(selected string) []Option {
	if selected == "" {
		selected = listfilter.All
	}
	opts := []Option{
		{Value: listfilter.All, Label: "All Tasks"},
		{Value: models.TaskStatusPending, Label: "Pending"},
		{Value: models.TaskStatusCompleted, Label: "Completed"},
	}
	for i := range opts {
		opts[i].Selected = opts[i].Value == selected
	}
	return opts
}

// Filter applies the status filter and the search query to a snapshot.
// Search matches the caption, the student name and the location.
func Filter(items []models.Task, status, q string) []models.Task {
	out := listfilter.ByField(items, status, func(t models.Task) string { return t.Status })
	return listfilter.Search(out, q,
		func(t models.Task) string { return t.AICaption },
		func(t models.Task) string { return t.StudentName },
		func(t models.Task) string { return t.Location },
	)
}

// Card is one task in the list.
type Card struct {
	TaskID         string
	Caption        string
	StudentName    string
	RegisterNumber string
	Location       string
	AssignedTo     string
	Created        string
	Status         string
	StatusClass    string
	Pending        bool
}

// ListView is the task list or its placeholder.
type ListView struct {
	Cards       []Card
	Placeholder *panel.Placeholder
	Status      string
	Query       string
	Statuses    []Option
	Shown       int
	Total       int
}

// BuildList filters the panel snapshot and renders it.
func BuildList(p panel.Panel[models.Task], status, q string) ListView {
	items := Filter(p.Items, status, q)
	v := ListView{
		Status:   status,
		Query:    q,
		Statuses: StatusOptions(status),
		Total:    len(p.Items),
	}
	if ph := panel.For(p, items, EmptyMessage); ph != nil {
		v.Placeholder = ph
		return v
	}
	v.Cards = make([]Card, 0, len(items))
	for _, t := range items {
		v.Cards = append(v.Cards, NewCard(t))
	}
	v.Shown = len(v.Cards)
	return v
}

// NewCard renders one task.
func NewCard(t models.Task) Card {
	return Card{
		TaskID:         t.TaskID,
		Caption:        format.OrDefault(t.AICaption, "No caption"),
		StudentName:    t.StudentName,
		RegisterNumber: t.RegisterNumber,
		Location:       t.Location,
		AssignedTo:     t.AssignedTo,
		Created:        format.DateTime(models.ParseTime(t.CreatedAt), "Unknown"),
		Status:         t.Status,
		StatusClass:    format.StatusClass(t.Status),
		Pending:        t.IsPending(),
	}
}

// DetailView is the task detail modal.
type DetailView struct {
	TaskID             string
	StudentName        string
	RegisterNumber     string
	AICaption          string
	StudentCaption     string
	Location           string
	Status             string
	StatusClass        string
	AssignedTo         string
	Created            string
	Completed          string
	OriginalImageURL   string
	CompletionImageURL string
	Pending            bool
	StaffOptions       []Option
	CSRFToken          string
}

// BuildDetail renders a task detail. staff feeds the reassign picker;
// the currently assigned member is preselected.
func BuildDetail(t models.Task, staff []models.StaffMember) DetailView {
	v := DetailView{
		TaskID:         t.TaskID,
		StudentName:    t.StudentName,
		RegisterNumber: t.RegisterNumber,
		AICaption:      format.OrDefault(t.AICaption, "N/A"),
		StudentCaption: format.OrDefault(t.StudentCaption, "None"),
		Location:       format.OrDefault(t.Location, "Unknown"),
		Status:         t.Status,
		StatusClass:    format.StatusClass(t.Status),
		AssignedTo:     t.AssignedTo,
		Created:        format.DateTime(models.ParseTime(t.CreatedAt), "Unknown"),
		Pending:        t.IsPending(),
	}
	if ct := models.ParseTime(t.CompletedAt); !ct.IsZero() {
		v.Completed = format.DateTime(ct, "")
	}
	if t.HasOriginalImage || t.Images == nil {
		v.OriginalImageURL = t.OriginalImageURL()
	}
	if t.HasCompletionImage || t.Images == nil {
		v.CompletionImageURL = t.CompletionPhotoURL()
	}
	for _, s := range staff {
		if !s.Active {
			continue
		}
		v.StaffOptions = append(v.StaffOptions, Option{
			Value:    s.StaffID,
			Label:    s.Name + " (" + s.StaffID + ")",
			Selected: s.StaffID == t.AssignedTo,
		})
	}
	return v
}

// UnassignedRow is one task waiting for a staff member.
type UnassignedRow struct {
	Card
	Reason string
}

// UnassignedView lists unassigned tasks.
type UnassignedView struct {
	Rows         []UnassignedRow
	Placeholder  *panel.Placeholder
	StaffOptions []Option
}

// BuildUnassigned renders the unassigned task list.
func BuildUnassigned(items []models.UnassignedTask, staff []models.StaffMember) UnassignedView {
	var v UnassignedView
	for _, s := range staff {
		if s.Active {
			v.StaffOptions = append(v.StaffOptions, Option{Value: s.StaffID, Label: s.Name})
		}
	}
	if len(items) == 0 {
		v.Placeholder = panel.Empty("No unassigned tasks")
		return v
	}
	for _, u := range items {
		v.Rows = append(v.Rows, UnassignedRow{Card: NewCard(u.Task), Reason: u.Reason})
	}
	return v
}
