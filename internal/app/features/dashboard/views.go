// internal/app/features/dashboard/views.go
package dashboard

import (
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// StatCard is one number at the top of the page.
type StatCard struct {
	ID    string
	Icon  string
	Label string
	Value int
}

// StatsView is the stat card row.
type StatsView struct {
	Cards []StatCard
}

// BuildStats turns the summary into cards. Missing counts are already zero.
func BuildStats(s models.Summary) StatsView {
	return StatsView{Cards: []StatCard{
		{ID: "totalStaff", Icon: "👷", Label: "Total Staff", Value: s.TotalStaff},
		{ID: "totalTasks", Icon: "📋", Label: "Total Tasks", Value: s.TotalTasks},
		{ID: "pendingTasks", Icon: "⏳", Label: "Pending Tasks", Value: s.PendingTasks},
		{ID: "completedTasks", Icon: "✅", Label: "Completed Tasks", Value: s.CompletedTasks},
		{ID: "queuedTasks", Icon: "📥", Label: "Queued Tasks", Value: s.QueuedTasks},
		{ID: "totalStudents", Icon: "🎓", Label: "Total Students", Value: s.TotalStudents},
	}}
}

// ActivityRow is one feed entry.
type ActivityRow struct {
	Type        string
	Description string
	When        string
	Icon        string
}

// ActivityView is the recent activity list or its placeholder.
type ActivityView struct {
	Rows        []ActivityRow
	Placeholder *panel.Placeholder
}

// BuildActivity renders the activity panel. A failed load reads the same
// as an empty feed.
func BuildActivity(p panel.Panel[models.Activity]) ActivityView {
	if p.Failed() {
		return ActivityView{Placeholder: panel.Empty(board.FallbackActivity)}
	}
	if ph := panel.For(p, p.Items, board.FallbackActivity); ph != nil {
		return ActivityView{Placeholder: ph}
	}
	rows := make([]ActivityRow, 0, len(p.Items))
	for _, a := range p.Items {
		rows = append(rows, ActivityRow{
			Type:        a.Type,
			Description: a.Description,
			When:        format.DateTime(models.ParseTime(a.Timestamp), "Unknown"),
			Icon:        a.Icon,
		})
	}
	return ActivityView{Rows: rows}
}

// ChartsView is the task trends card. Charting is not implemented; the
// card only shows a placeholder.
type ChartsView struct {
	Title       string
	Placeholder string
}

// BuildCharts returns the stubbed charts card.
func BuildCharts() ChartsView {
	return ChartsView{Title: "Task Trends", Placeholder: "Chart visualization would go here"}
}
