package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/store/audit"
	"github.com/dalemusser/gardenadmin/internal/testutil"
)

func TestStore_Log_AutoFillsIDAndTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Log(ctx, audit.Event{
		Category:  audit.CategoryStaff,
		EventType: audit.EventStaffCreated,
		Target:    "s1",
		IP:        "10.0.0.1",
		Success:   true,
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := store.GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be generated")
	}
	if events[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestStore_Query_FiltersAndOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	events := []audit.Event{
		{Category: audit.CategoryTasks, EventType: audit.EventTaskCompleted, Target: "t1", Timestamp: base, Success: true},
		{Category: audit.CategoryTasks, EventType: audit.EventTaskReassigned, Target: "t1", Timestamp: base.Add(time.Minute), Success: true},
		{Category: audit.CategoryMedia, EventType: audit.EventMediaCleanup, Timestamp: base.Add(2 * time.Minute), Success: false},
	}
	for _, e := range events {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	got, err := store.Query(ctx, audit.QueryFilter{Target: "t1"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].EventType != audit.EventTaskReassigned {
		t.Errorf("first event: got %q, want newest %q", got[0].EventType, audit.EventTaskReassigned)
	}

	media, err := store.Query(ctx, audit.QueryFilter{Category: audit.CategoryMedia})
	if err != nil {
		t.Fatalf("Query by category failed: %v", err)
	}
	if len(media) != 1 || media[0].Success {
		t.Errorf("media events: got %+v, want one failed cleanup", media)
	}
}
