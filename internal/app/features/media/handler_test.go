package media_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/gardenadmin/internal/app/features/errors"
	"github.com/dalemusser/gardenadmin/internal/app/features/media"
	"github.com/dalemusser/gardenadmin/internal/app/system/alert"
	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(t *testing.T) (*media.Handler, *testutil.GardenServer, *observer.ObservedLogs) {
	t.Helper()
	testutil.BootTemplates(t)
	garden := testutil.NewGardenServer(t)
	garden.Handle("GET", "/admin/media_gallery", testutil.JSON(http.StatusOK, map[string]any{
		"media": testutil.SampleMedia(), "total": 2,
	}))
	client := garden.Client()
	logger := zap.NewNop()
	core, logs := observer.New(zapcore.InfoLevel)
	b := board.New(client, logger, nil)
	h := media.NewHandler(b, client, garden.URL, auditlog.New(nil, zap.New(core), auditlog.ModeLog), uierrors.NewErrorLogger(logger), logger)
	return h, garden, logs
}

func TestHandleCleanup_ReloadsGallery(t *testing.T) {
	h, garden, logs := newTestHandler(t)
	garden.Handle("POST", "/admin/cleanup_media", testutil.JSON(http.StatusOK, map[string]any{
		"filesDeleted": 2, "spaceFreed": 1048576, "message": "ok",
	}))

	rec := httptest.NewRecorder()
	testutil.Serve(h.HandleCleanup, rec, testutil.HTMX(httptest.NewRequest("POST", "/media/cleanup", nil), "alerts"))

	var body map[string]int
	if !garden.Body("POST", "/admin/cleanup_media", &body) || body["days"] != 30 {
		t.Errorf("body = %v, want days=30", body)
	}
	if garden.Hits("GET", "/admin/media_gallery") != 1 {
		t.Error("gallery should reload after cleanup")
	}
	if got := rec.Header().Get(alert.TriggerHeader); got != alert.EventMediaChanged {
		t.Errorf("HX-Trigger = %q", got)
	}
	if logs.FilterField(zap.String("event_type", "media_cleanup")).Len() != 1 {
		t.Error("audit event not logged")
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Cleaned up 2 files") {
		t.Errorf("response = %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleCleanup_FailureSkipsReload(t *testing.T) {
	h, garden, _ := newTestHandler(t)
	garden.Handle("POST", "/admin/cleanup_media", testutil.JSON(http.StatusInternalServerError, map[string]string{"error": "disk"}))

	rec := httptest.NewRecorder()
	testutil.Serve(h.HandleCleanup, rec, testutil.HTMX(httptest.NewRequest("POST", "/media/cleanup", nil), "alerts"))

	if garden.Hits("GET", "/admin/media_gallery") != 0 {
		t.Error("failed cleanup should not reload")
	}
	if got := rec.Header().Get(alert.TriggerHeader); got != "" {
		t.Errorf("HX-Trigger = %q, want none", got)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Failed to clean up media") {
		t.Errorf("response = %d %q", rec.Code, rec.Body.String())
	}
}

func TestServeList_RendersGallery(t *testing.T) {
	h, garden, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	testutil.Serve(h.ServeList, rec, httptest.NewRequest("GET", "/media", nil))

	if garden.Hits("GET", "/admin/media_gallery") != 1 {
		t.Error("gallery not loaded")
	}
	body := rec.Body.String()
	if rec.Code != http.StatusOK || !strings.Contains(body, "a.jpg") || !strings.Contains(body, "b.mp4") {
		t.Errorf("page = %d %q", rec.Code, body)
	}
	if !strings.Contains(body, garden.URL+"/uploads/a.jpg") {
		t.Error("media URLs should resolve against the Garden base")
	}
}

func TestServeListFragment_FiltersByType(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.Board.LoadMedia(t.Context())

	rec := httptest.NewRecorder()
	testutil.Serve(h.ServeListFragment, rec, testutil.HTMX(httptest.NewRequest("GET", "/media/list?type=video", nil), "mediaGallery"))

	body := rec.Body.String()
	if rec.Code != http.StatusOK || !strings.Contains(body, "<video") || strings.Contains(body, "a.jpg") {
		t.Errorf("fragment = %d %q, want only the video", rec.Code, body)
	}
}
