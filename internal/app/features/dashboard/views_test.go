package dashboard_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/features/dashboard"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func TestBuildStats(t *testing.T) {
	v := dashboard.BuildStats(models.Summary{TotalStaff: 4, PendingTasks: 2, TotalStudents: 9})
	got := map[string]int{}
	for _, c := range v.Cards {
		got[c.ID] = c.Value
	}
	want := map[string]int{
		"totalStaff": 4, "totalTasks": 0, "pendingTasks": 2,
		"completedTasks": 0, "queuedTasks": 0, "totalStudents": 9,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stat cards mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildActivity(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		p := panel.Panel[models.Activity]{
			State: panel.StateReady,
			Items: []models.Activity{{Type: "Task", Description: "New report", Timestamp: "garbage", Icon: "📝"}},
		}
		v := dashboard.BuildActivity(p)
		if v.Placeholder != nil {
			t.Fatalf("unexpected placeholder %+v", v.Placeholder)
		}
		if len(v.Rows) != 1 || v.Rows[0].When != "Unknown" || v.Rows[0].Icon != "📝" {
			t.Errorf("rows = %+v", v.Rows)
		}
	})

	t.Run("empty", func(t *testing.T) {
		v := dashboard.BuildActivity(panel.Panel[models.Activity]{State: panel.StateReady})
		if v.Placeholder == nil || v.Placeholder.Message != "No recent activity" {
			t.Errorf("placeholder = %+v", v.Placeholder)
		}
	})

	t.Run("failed reads as empty", func(t *testing.T) {
		p := panel.Panel[models.Activity]{State: panel.StateError, Fallback: "No recent activity", Err: errors.New("x")}
		v := dashboard.BuildActivity(p)
		if v.Placeholder == nil || v.Placeholder.Kind != panel.KindEmpty || v.Placeholder.Message != "No recent activity" {
			t.Errorf("placeholder = %+v", v.Placeholder)
		}
	})
}
