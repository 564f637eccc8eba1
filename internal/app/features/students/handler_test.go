package students_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/features/students"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/gardenadmin/internal/testutil"
	"go.uber.org/zap"
)

func TestServeList_LoadsStudents(t *testing.T) {
	testutil.BootTemplates(t)
	garden := testutil.NewGardenServer(t)
	garden.Handle("GET", "/admin/all_students", testutil.JSON(http.StatusOK, map[string]any{
		"students": testutil.SampleStudents(),
	}))
	h := students.NewHandler(board.New(garden.Client(), zap.NewNop(), nil), zap.NewNop())

	rec := httptest.NewRecorder()
	testutil.Serve(h.ServeList, rec, httptest.NewRequest("GET", "/students", nil))

	if garden.Hits("GET", "/admin/all_students") != 1 {
		t.Errorf("all_students hits = %d, want 1", garden.Hits("GET", "/admin/all_students"))
	}
	if h.Board.Active() != models.SectionStudents {
		t.Errorf("active section = %q", h.Board.Active())
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d, body %q", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); !strings.Contains(body, "Asha") || !strings.Contains(body, "21ME014") {
		t.Errorf("page body missing students: %q", body)
	}

	rec = httptest.NewRecorder()
	testutil.Serve(h.ServeListFragment, rec, httptest.NewRequest("GET", "/students/list?q=ravi", nil))
	if garden.Hits("GET", "/admin/all_students") != 1 {
		t.Error("fragment refetched students")
	}
	body := rec.Body.String()
	if rec.Code != http.StatusOK || !strings.Contains(body, "Ravi") || strings.Contains(body, "Asha") {
		t.Errorf("fragment = %d %q, want only Ravi", rec.Code, body)
	}
}

func TestServeListFragment_NoMatch(t *testing.T) {
	testutil.BootTemplates(t)
	garden := testutil.NewGardenServer(t)
	garden.Handle("GET", "/admin/all_students", testutil.JSON(http.StatusOK, map[string]any{
		"students": testutil.SampleStudents(),
	}))
	h := students.NewHandler(board.New(garden.Client(), zap.NewNop(), nil), zap.NewNop())
	h.Board.LoadStudents(t.Context())

	rec := httptest.NewRecorder()
	testutil.Serve(h.ServeListFragment, rec, httptest.NewRequest("GET", "/students/list?q=zzz", nil))
	if !strings.Contains(rec.Body.String(), students.EmptyMessage) {
		t.Errorf("fragment = %q, want %q", rec.Body.String(), students.EmptyMessage)
	}
}
