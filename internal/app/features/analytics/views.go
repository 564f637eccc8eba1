// internal/app/features/analytics/views.go
package analytics

import (
	"fmt"
	"strconv"

	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// Option is a select option.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

var rangeLabels = map[string]string{
	models.RangeToday: "Today",
	models.RangeWeek:  "This Week",
	models.RangeMonth: "This Month",
	models.RangeAll:   "All Time",
}

// RangeOptions returns the range select with selected marked.
func RangeOptions(selected string) []Option {
	opts := make([]Option, 0, len(models.Ranges))
	for _, r := range models.Ranges {
		opts = append(opts, Option{Value: r, Label: rangeLabels[r], Selected: r == selected})
	}
	return opts
}

// Card is one summary figure.
type Card struct {
	Value string
	Label string
}

// SummaryView is the analytics summary or its placeholder.
type SummaryView struct {
	Range       string
	Cards       []Card
	Placeholder *panel.Placeholder
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BuildSummary renders the analytics panel for rng.
func BuildSummary(p panel.Single[models.Analytics], rng string) SummaryView {
	v := SummaryView{Range: rng}
	switch {
	case p.Failed():
		v.Placeholder = panel.Failed(p.Fallback)
		return v
	case p.Value == nil:
		v.Placeholder = panel.Loading(panel.LoadingMessage)
		return v
	}
	a := p.Value
	v.Cards = []Card{
		{Value: strconv.Itoa(a.TotalTasks), Label: "Total Tasks"},
		{Value: number(a.CompletionRate) + "%", Label: "Completion Rate"},
		{Value: number(a.AvgResponseTime) + " min", Label: "Avg Response Time"},
		{Value: strconv.Itoa(a.ActiveUsers), Label: "Active Users"},
	}
	return v
}

// ReportFilename names a downloaded report.
func ReportFilename(rng string, unixMillis int64) string {
	return fmt.Sprintf("report_%s_%d.pdf", rng, unixMillis)
}
