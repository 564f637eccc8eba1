// internal/app/features/students/handler.go
package students

import (
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler shows the read-only students section.
type Handler struct {
	Board *board.Board
	Log   *zap.Logger
}

func NewHandler(b *board.Board, logger *zap.Logger) *Handler {
	return &Handler{Board: b, Log: logger}
}

type listData struct {
	viewdata.BaseVM
	List ListView
}

// ServeList loads students and renders the students section.
// GET /students
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionStudents)
	h.Board.LoadStudents(r.Context())

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, models.SectionStudents),
		List:   BuildList(h.Board.Students(), query.Search(r, "q")),
	}
	templates.Render(w, r, "students_page", data)
}

// ServeListFragment re-renders the list from the snapshot with the search query.
// GET /students/list
func (h *Handler) ServeListFragment(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "students_list", BuildList(h.Board.Students(), query.Search(r, "q")))
}
