// internal/app/features/staff/list.go
package staff

import (
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type listData struct {
	viewdata.BaseVM
	List ListView
}

// ServeList loads staff members and renders the staff section.
// GET /staff
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionStaff)
	h.Board.LoadStaff(r.Context())

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, models.SectionStaff),
		List:   BuildList(h.Board.Staff()),
	}
	templates.Render(w, r, "staff_page", data)
}

// ServeListFragment re-renders the staff list from the current snapshot.
// GET /staff/list
func (h *Handler) ServeListFragment(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "staff_list", BuildList(h.Board.Staff()))
}
