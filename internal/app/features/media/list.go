// internal/app/features/media/list.go
package media

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

// ServeList loads the gallery and renders the media section.
// GET /media
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.Board.SetActive(models.SectionMedia)
	h.Board.LoadMedia(r.Context())

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, models.SectionMedia),
		List:   BuildList(h.Board.Media(), query.Get(r, "type"), h.MediaBase),
	}
	templates.Render(w, r, "media_page", data)
}

// ServeListFragment re-renders the gallery from the snapshot.
// GET /media/list?type=
func (h *Handler) ServeListFragment(w http.ResponseWriter, r *http.Request) {
	templates.RenderSnippet(w, "media_list", BuildList(h.Board.Media(), query.Get(r, "type"), h.MediaBase))
}
