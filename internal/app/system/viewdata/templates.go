package viewdata

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

// StatusTemplate renders the header refresh status on its own, for the
// poll and the auto-refresh toggle.
const StatusTemplate = "status_bar"

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "viewdata",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
