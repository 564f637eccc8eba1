package gardenapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newClient(t *testing.T, h http.Handler) (*gardenapi.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return gardenapi.New(gardenapi.Config{BaseURL: srv.URL, Logger: zap.NewNop()}), srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAllTasks_DecodesTasks(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/all_tasks" {
			t.Errorf("path: got %q, want %q", r.URL.Path, "/admin/all_tasks")
		}
		if r.Header.Get(gardenapi.RequestIDHeader) == "" {
			t.Error("missing request id header")
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"tasks": []map[string]any{
				{"taskId": "t1", "status": "pending", "studentName": "Asha", "location": "Block A"},
				{"taskId": "t2", "status": "completed", "studentName": "Ravi"},
			},
			"total": 2,
		})
	}))

	tasks, err := c.AllTasks(context.Background())
	if err != nil {
		t.Fatalf("AllTasks: %v", err)
	}
	want := []models.Task{
		{TaskID: "t1", Status: "pending", StudentName: "Asha", Location: "Block A"},
		{TaskID: "t2", Status: "completed", StudentName: "Ravi"},
	}
	if diff := cmp.Diff(want, tasks); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestNon2xx_ReturnsAPIErrorWithServerMessage(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Staff ID already exists"})
	}))

	_, err := c.CreateStaff(context.Background(), "s1", "Kumar")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *gardenapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type: got %T, want *gardenapi.APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", apiErr.Status, http.StatusBadRequest)
	}
	if got := gardenapi.ServerMessage(err); got != "Staff ID already exists" {
		t.Errorf("message: got %q, want %q", got, "Staff ID already exists")
	}
}

func TestNon2xx_PlainTextBody(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))

	_, err := c.AllStudents(context.Background())
	if gardenapi.StatusOf(err) != http.StatusBadGateway {
		t.Fatalf("status: got %d, want %d", gardenapi.StatusOf(err), http.StatusBadGateway)
	}
	if got := gardenapi.ServerMessage(err); got != "upstream exploded" {
		t.Errorf("message: got %q, want %q", got, "upstream exploded")
	}
}

func TestNetworkError_IsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := gardenapi.New(gardenapi.Config{BaseURL: url})
	_, err := c.MediaGallery(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if gardenapi.StatusOf(err) != 0 {
		t.Errorf("status: got %d, want 0", gardenapi.StatusOf(err))
	}
}

func TestStaffTasks_DefaultsToPendingAndEscapesID(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/admin/staff/staff%2F7/tasks" {
			t.Errorf("path: got %q", r.URL.EscapedPath())
		}
		if got := r.URL.Query().Get("status"); got != "pending" {
			t.Errorf("status query: got %q, want %q", got, "pending")
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"staff":  map[string]any{"staffId": "staff/7", "name": "Meena", "active": true},
			"tasks":  []map[string]any{{"taskId": "t9", "status": "pending"}},
			"total":  1,
			"filter": "pending",
		})
	}))

	out, err := c.StaffTasks(context.Background(), "staff/7", "")
	if err != nil {
		t.Fatalf("StaffTasks: %v", err)
	}
	if out.Staff.Name != "Meena" {
		t.Errorf("staff name: got %q, want %q", out.Staff.Name, "Meena")
	}
	if len(out.Tasks) != 1 || out.Tasks[0].TaskID != "t9" {
		t.Errorf("tasks: got %+v", out.Tasks)
	}
}

func TestStaffTasks_NotFound(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Staff member not found"})
	}))

	_, err := c.StaffTasks(context.Background(), "ghost", "all")
	if !gardenapi.IsNotFound(err) {
		t.Fatalf("IsNotFound: got false for %v", err)
	}
}

func TestPostActions_SendJSONBodies(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies = map[string]map[string]any{}
	)
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("%s: method got %s, want POST", r.URL.Path, r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: content type got %q", r.URL.Path, ct)
		}
		var m map[string]any
		_ = json.NewDecoder(r.Body).Decode(&m)
		mu.Lock()
		bodies[r.URL.Path] = m
		mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok", "filesDeleted": 3, "spaceFreed": 2048})
	}))
	ctx := context.Background()

	if _, err := c.SetStaffActive(ctx, "s1", false); err != nil {
		t.Fatalf("SetStaffActive: %v", err)
	}
	res, err := c.CleanupMedia(ctx, 0)
	if err != nil {
		t.Fatalf("CleanupMedia: %v", err)
	}
	if res.FilesDeleted != 3 || res.SpaceFreed != 2048 {
		t.Errorf("cleanup result: got %+v", res)
	}
	if _, err := c.ReassignTask(ctx, "t1", "s2"); err != nil {
		t.Fatalf("ReassignTask: %v", err)
	}
	if _, err := c.MarkCompleted(ctx, "t5", ""); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if got := bodies["/staff/activate/s1"]["active"]; got != false {
		t.Errorf("activate body: got %v, want false", got)
	}
	if got := bodies["/admin/cleanup_media"]["days"]; got != float64(gardenapi.DefaultCleanupDays) {
		t.Errorf("cleanup days: got %v, want %d", got, gardenapi.DefaultCleanupDays)
	}
	if got := bodies["/admin/reassign_task"]["staffId"]; got != "s2" {
		t.Errorf("reassign staffId: got %v, want s2", got)
	}
	if _, ok := bodies["/mark_completed"]["staffId"]; ok {
		t.Error("mark_completed: staffId should be omitted when empty")
	}
}

func TestDetectAdmin_FallsBackToPrimary(t *testing.T) {
	primary := httptest.NewServer(http.NotFoundHandler())
	defer primary.Close()
	admin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer admin.Close()

	c := gardenapi.New(gardenapi.Config{BaseURL: primary.URL, AdminURL: admin.URL})
	if c.DetectAdmin(context.Background()) {
		t.Fatal("DetectAdmin: got true, want false")
	}
	if c.AdminBase() != primary.URL {
		t.Errorf("AdminBase: got %q, want %q", c.AdminBase(), primary.URL)
	}
}

func TestDetectAdmin_UsesAdminForAllTasks(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("primary should not be called for %s", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()
	admin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		case "/admin/all_tasks":
			writeJSON(w, http.StatusOK, map[string]any{"tasks": []any{map[string]any{"taskId": "a1"}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer admin.Close()

	c := gardenapi.New(gardenapi.Config{BaseURL: primary.URL, AdminURL: admin.URL})
	if !c.DetectAdmin(context.Background()) {
		t.Fatal("DetectAdmin: got false, want true")
	}
	tasks, err := c.AllTasks(context.Background())
	if err != nil {
		t.Fatalf("AllTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].TaskID != "a1" {
		t.Errorf("tasks: got %+v", tasks)
	}
}

func TestGenerateReport_StreamsBody(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("range"); got != "week" {
			t.Errorf("range: got %q, want %q", got, "week")
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))

	rep, err := c.GenerateReport(context.Background(), "week")
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	defer rep.Close()
	b, _ := io.ReadAll(rep.Body)
	if string(b) != "%PDF-1.4 fake" {
		t.Errorf("body: got %q", b)
	}
	if rep.ContentType != "application/pdf" {
		t.Errorf("content type: got %q", rep.ContentType)
	}
}

func TestGenerateReport_ServerError(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "PDF generation library not installed"})
	}))

	_, err := c.GenerateReport(context.Background(), "all")
	if gardenapi.StatusOf(err) != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", gardenapi.StatusOf(err))
	}
}
