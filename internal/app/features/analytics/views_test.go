package analytics_test

import (
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/features/analytics"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func TestBuildSummary(t *testing.T) {
	p := panel.Single[models.Analytics]{
		Value: &models.Analytics{TotalTasks: 12, CompletionRate: 66.7, AvgResponseTime: 45, ActiveUsers: 9},
		State: panel.StateReady,
	}

	v := analytics.BuildSummary(p, models.RangeWeek)

	want := []analytics.Card{
		{Value: "12", Label: "Total Tasks"},
		{Value: "66.7%", Label: "Completion Rate"},
		{Value: "45 min", Label: "Avg Response Time"},
		{Value: "9", Label: "Active Users"},
	}
	if diff := cmp.Diff(want, v.Cards); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSummary_MissingValuesAreZero(t *testing.T) {
	v := analytics.BuildSummary(panel.Single[models.Analytics]{Value: &models.Analytics{}}, models.RangeToday)
	if v.Cards[1].Value != "0%" || v.Cards[2].Value != "0 min" {
		t.Errorf("cards = %+v", v.Cards)
	}
}

func TestBuildSummary_Failed(t *testing.T) {
	p := panel.Single[models.Analytics]{State: panel.StateError, Fallback: "Failed to load analytics"}
	v := analytics.BuildSummary(p, models.RangeToday)
	if v.Placeholder == nil || v.Placeholder.Message != "Failed to load analytics" || v.Cards != nil {
		t.Errorf("view = %+v", v)
	}
}

func TestRangeOptions(t *testing.T) {
	opts := analytics.RangeOptions(models.RangeMonth)
	if len(opts) != 4 {
		t.Fatalf("options = %d, want 4", len(opts))
	}
	for _, o := range opts {
		if o.Selected != (o.Value == models.RangeMonth) {
			t.Errorf("option %q selected = %v", o.Value, o.Selected)
		}
	}
}

func TestReportFilename(t *testing.T) {
	if got := analytics.ReportFilename("week", 1714550400000); got != "report_week_1714550400000.pdf" {
		t.Errorf("ReportFilename = %q", got)
	}
}
