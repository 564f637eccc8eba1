package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/features/health"
	"github.com/dalemusser/gardenadmin/internal/testutil"
	"go.uber.org/zap"
)

type healthBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Garden   string `json:"garden"`
	Message  string `json:"message"`
}

func serveHealth(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_AllHealthy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	garden := testutil.NewGardenServer(t)
	garden.Handle("GET", "/health", testutil.JSON(http.StatusOK, map[string]string{"status": "healthy"}))

	handler := health.NewHandler(db.Client(), garden.Client(), zap.NewNop())
	rec, body := serveHealth(t, handler)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	if body.Status != "ok" || body.Database != "connected" || body.Garden != "reachable" {
		t.Errorf("body = %+v", body)
	}
}

func TestServe_GardenDownIsDegraded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	garden := testutil.NewGardenServer(t)
	garden.Handle("GET", "/health", testutil.JSON(http.StatusInternalServerError, map[string]string{"error": "down"}))

	handler := health.NewHandler(db.Client(), garden.Client(), zap.NewNop())
	rec, body := serveHealth(t, handler)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body.Status != "degraded" || body.Garden != "unreachable" {
		t.Errorf("body = %+v", body)
	}
	if body.Message != "Garden API unavailable" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestServe_NilGardenSkipsUpstreamCheck(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db.Client(), nil, zap.NewNop())
	_, body := serveHealth(t, handler)
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
}
