// internal/app/features/tasks/list.go
package tasks

import (
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

type listData struct {
	viewdata.BaseVM
	List ListView
}

// ServeList loads all tasks and renders the tasks section.
// GET /tasks
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionTasks)
	h.Board.LoadTasks(r.Context())

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, models.SectionTasks),
		List:   BuildList(h.Board.Tasks(), query.Get(r, "status"), query.Search(r, "q")),
	}
	templates.Render(w, r, "tasks_page", data)
}

// ServeListFragment re-renders the list from the current snapshot with the
// requested status filter and search query. No API call is made.
// GET /tasks/list
func (h *Handler) ServeListFragment(w http.ResponseWriter, r *http.Request) {
	v := BuildList(h.Board.Tasks(), query.Get(r, "status"), query.Search(r, "q"))
	templates.RenderSnippet(w, "tasks_list", v)
}
