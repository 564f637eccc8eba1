// internal/app/features/staff/views.go
package staff

import (
	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// EmptyMessage is shown when there are no staff members.
const EmptyMessage = "No staff members found"

// Card is one staff member in the list.
type Card struct {
	StaffID   string
	Name      string
	Active    bool
	Total     int
	Pending   int
	Completed int
	LastLogin string
}

// ListView is the staff list or its placeholder.
type ListView struct {
	Cards       []Card
	Placeholder *panel.Placeholder
}

// BuildList renders the staff panel.
func BuildList(p panel.Panel[models.StaffMember]) ListView {
	if ph := panel.For(p, p.Items, EmptyMessage); ph != nil {
		return ListView{Placeholder: ph}
	}
	cards := make([]Card, 0, len(p.Items))
	for _, s := range p.Items {
		c := Card{
			StaffID:   s.StaffID,
			Name:      s.Name,
			Active:    s.Active,
			Total:     s.TaskCounts.Total,
			Pending:   s.TaskCounts.Pending,
			Completed: s.TaskCounts.Completed,
		}
		if t := models.ParseTime(s.LastLogin); !t.IsZero() {
			c.LastLogin = format.DateTime(t, "")
		}
		cards = append(cards, c)
	}
	return ListView{Cards: cards}
}

// FilterOption is one choice of the modal filter select.
type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

// TaskCard is one task inside the staff modal.
type TaskCard struct {
	TaskID             string
	StudentName        string
	RegisterNumber     string
	StudentCaption     string
	AICaption          string
	Location           string
	Created            string
	Completed          string
	ImageURL           string
	CompletionImageURL string
	Status             string
	StatusClass        string
	Pending            bool
}

// ModalView is the staff tasks modal body.
type ModalView struct {
	Open        bool
	Title       string
	StaffID     string
	Filters     []FilterOption
	Cards       []TaskCard
	Placeholder *panel.Placeholder
}

// BuildModal renders m. Image paths are resolved against mediaBase.
func BuildModal(m Modal, mediaBase string) ModalView {
	v := ModalView{
		Open:    m.IsOpen(),
		Title:   "Tasks for " + m.StaffName,
		StaffID: m.StaffID,
	}
	filter := NormalizeFilter(m.Filter)
	for _, o := range []FilterOption{
		{Value: FilterPending, Label: "Pending Tasks"},
		{Value: FilterCompleted, Label: "Completed Tasks"},
		{Value: FilterAll, Label: "All Tasks"},
	} {
		o.Selected = o.Value == filter
		v.Filters = append(v.Filters, o)
	}

	switch m.State {
	case ModalLoading:
		v.Placeholder = panel.Loading("Loading tasks...")
		return v
	case ModalError:
		v.Placeholder = panel.Failed(m.Message)
		return v
	case ModalLoaded:
	default:
		return v
	}
	if len(m.Tasks) == 0 {
		v.Placeholder = panel.Empty("No tasks found")
		return v
	}
	for _, t := range m.Tasks {
		c := TaskCard{
			TaskID:             t.TaskID,
			StudentName:        t.StudentName,
			RegisterNumber:     t.RegisterNumber,
			StudentCaption:     format.OrDefault(t.StudentCaption, "N/A"),
			AICaption:          format.OrDefault(t.AICaption, "N/A"),
			Location:           format.OrDefault(t.Location, "Unknown"),
			Created:            format.DateTime(models.ParseTime(t.CreatedAt), "Unknown"),
			ImageURL:           format.AbsURL(mediaBase, t.OriginalImageURL()),
			CompletionImageURL: format.AbsURL(mediaBase, t.CompletionPhotoURL()),
			Status:             t.Status,
			StatusClass:        format.StatusClass(t.Status),
			Pending:            t.IsPending(),
		}
		if ct := models.ParseTime(t.CompletedAt); !ct.IsZero() {
			c.Completed = format.DateTime(ct, "")
		}
		v.Cards = append(v.Cards, c)
	}
	return v
}
