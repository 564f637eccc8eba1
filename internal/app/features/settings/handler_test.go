package settings_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	"github.com/dalemusser/gardenadmin/internal/app/features/settings"
	"github.com/dalemusser/gardenadmin/internal/app/store/audit"
	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/autorefresh"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/gardenadmin/internal/testutil"
	"go.uber.org/zap"
)

type memStore struct {
	saved   *models.DashboardSettings
	saveErr error
}

func (m *memStore) Get(ctx context.Context) (models.DashboardSettings, error) {
	if m.saved != nil {
		return *m.saved, nil
	}
	return models.DefaultDashboardSettings(), nil
}

func (m *memStore) Save(ctx context.Context, s models.DashboardSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &s
	return nil
}

type fakeEvents struct{ calls int }

func (f *fakeEvents) GetRecent(ctx context.Context, limit int64) ([]audit.Event, error) {
	f.calls++
	return []audit.Event{{EventType: audit.EventStaffCreated, Target: "s1", Success: true, Timestamp: time.Now()}}, nil
}

type fixture struct {
	h       *settings.Handler
	store   *memStore
	events  *fakeEvents
	refresh *autorefresh.Controller
	garden  *testutil.GardenServer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	testutil.BootTemplates(t)
	garden := testutil.NewGardenServer(t)
	client := garden.Client()
	logger := zap.NewNop()
	b := board.New(client, logger, nil)
	refresh := autorefresh.New(b, autorefresh.Options{Interval: time.Hour, Logger: logger})
	t.Cleanup(refresh.Disable)

	store := &memStore{}
	events := &fakeEvents{}
	h := settings.NewHandler(store, events, client, b, refresh,
		auditlog.New(nil, logger, auditlog.ModeLog), uierrors.NewErrorLogger(logger), logger)
	return fixture{h: h, store: store, events: events, refresh: refresh, garden: garden}
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestServeSettings_LoadsEvents(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.ServeSettings, rec, httptest.NewRequest("GET", "/settings", nil))

	if f.events.calls != 1 {
		t.Errorf("GetRecent calls = %d, want 1", f.events.calls)
	}
	if f.h.Board.Active() != models.SectionSettings {
		t.Errorf("active section = %q", f.h.Board.Active())
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`value="30"`, `id="systemInfo"`, audit.EventStaffCreated, `id="refresh-status"`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s", want)
		}
	}
}

func TestHandleSettings_SavesAndApplies(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.HandleSettings, rec, postForm("/settings", url.Values{
		"refresh_interval": {"60"},
		"max_image_size":   {"12"},
		"max_video_size":   {"80"},
		"auto_refresh":     {"1"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if f.store.saved == nil || f.store.saved.RefreshIntervalSecs != 60 || f.store.saved.MaxVideoSizeMB != 80 {
		t.Errorf("saved = %+v", f.store.saved)
	}
	if !f.refresh.Enabled() {
		t.Error("auto refresh should be enabled")
	}
	if got := f.refresh.Interval(); got != time.Minute {
		t.Errorf("interval = %v, want 1m", got)
	}
}

func TestHandleSettings_DisablesRefresh(t *testing.T) {
	f := newFixture(t)
	f.refresh.Enable(time.Hour)

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.HandleSettings, rec, postForm("/settings", url.Values{
		"refresh_interval": {"30"}, "max_image_size": {"10"}, "max_video_size": {"50"},
	}))

	if f.refresh.Enabled() {
		t.Error("auto refresh should be disabled")
	}
	if got := f.refresh.Interval(); got != 30*time.Second {
		t.Errorf("interval = %v, want 30s", got)
	}
}

func TestHandleSettings_InvalidNotSaved(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.HandleSettings, rec, postForm("/settings", url.Values{
		"refresh_interval": {"1"}, "max_image_size": {"10"}, "max_video_size": {"50"},
	}))

	if f.store.saved != nil {
		t.Error("invalid settings were saved")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "alert-error") || !strings.Contains(body, `max="3600" value="1"`) {
		t.Errorf("form not re-rendered with error: %s", body)
	}
}

func TestHandleSettings_SaveErrorKeepsController(t *testing.T) {
	f := newFixture(t)
	f.store.saveErr = errors.New("mongo down")

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.HandleSettings, rec, postForm("/settings", url.Values{
		"refresh_interval": {"60"}, "max_image_size": {"10"}, "max_video_size": {"50"}, "auto_refresh": {"1"},
	}))

	if f.refresh.Enabled() {
		t.Error("failed save should not enable refresh")
	}
}

func TestHandleToggleAutoRefresh(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.HandleToggleAutoRefresh, rec, httptest.NewRequest("POST", "/settings/autorefresh", nil))
	if !f.refresh.Enabled() {
		t.Error("first toggle should enable")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `id="refresh-status"`) || !strings.Contains(body, "Last update") {
		t.Errorf("status fragment = %s", body)
	}

	rec = httptest.NewRecorder()
	testutil.Serve(f.h.HandleToggleAutoRefresh, rec, httptest.NewRequest("POST", "/settings/autorefresh", nil))
	if f.refresh.Enabled() {
		t.Error("second toggle should disable")
	}
}

func TestHandleProcessQueue(t *testing.T) {
	f := newFixture(t)
	f.garden.Handle("POST", "/queue/process", testutil.JSON(http.StatusOK, models.QueueProcessResult{TasksAssigned: 3}))

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.HandleProcessQueue, rec, testutil.HTMX(httptest.NewRequest("POST", "/settings/queue/process", nil), "alerts"))

	if f.garden.Hits("POST", "/queue/process") != 1 {
		t.Fatal("queue not processed")
	}
	if f.garden.Hits("GET", "/staff/workload") != 1 {
		t.Error("stats should reload")
	}
	if !strings.Contains(rec.Header().Get(alert.TriggerHeader), alert.EventStatsChanged) {
		t.Errorf("HX-Trigger = %q", rec.Header().Get(alert.TriggerHeader))
	}
	if body := rec.Body.String(); !strings.Contains(body, "alert-success") || !strings.Contains(body, "Assigned 3 tasks") {
		t.Errorf("alert body = %s", body)
	}
}

func TestServeSystem(t *testing.T) {
	f := newFixture(t)
	f.garden.Handle("GET", "/admin/system_stats", testutil.JSON(http.StatusOK, map[string]any{
		"database": map[string]int{"totalTasks": 10, "totalStudents": 4, "totalStaff": 2},
		"storage":  map[string]any{"totalFiles": 7, "totalSize": 2097152},
	}))

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.ServeSystem, rec, httptest.NewRequest("GET", "/settings/system", nil))

	if f.garden.Hits("GET", "/admin/system_stats") != 1 {
		t.Error("system stats not fetched")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`<div class="stat-value">10</div>`, "2.00 MB", "Media files"} {
		if !strings.Contains(body, want) {
			t.Errorf("system fragment missing %s", want)
		}
	}
}

func TestServeSystem_FailureShowsMessage(t *testing.T) {
	f := newFixture(t)
	f.garden.Handle("GET", "/admin/system_stats", testutil.JSON(http.StatusInternalServerError, map[string]string{"error": "down"}))

	rec := httptest.NewRecorder()
	testutil.Serve(f.h.ServeSystem, rec, httptest.NewRequest("GET", "/settings/system", nil))

	if body := rec.Body.String(); !strings.Contains(body, "Failed to load system information") {
		t.Errorf("system fragment = %s", body)
	}
}
