// internal/app/features/media/views.go
package media

import (
	"fmt"

	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/listfilter"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

const EmptyMessage = "No media found"

// Option is a select option.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// TypeOptions returns the media type filter with selected marked.
func TypeOptions(selected string) []Option {
	if selected == "" {
		selected = listfilter.All
	}
	opts := []Option{
		{Value: listfilter.All, Label: "All Media"},
		{Value: models.MediaTypeImage, Label: "Images"},
		{Value: models.MediaTypeVideo, Label: "Videos"},
	}
	for i := range opts {
		opts[i].Selected = opts[i].Value == selected
	}
	return opts
}

// Filter keeps the items of the given type.
func Filter(items []models.MediaItem, typ string) []models.MediaItem {
	return listfilter.ByField(items, typ, func(m models.MediaItem) string { return m.Type })
}

// Card is one gallery tile.
type Card struct {
	URL      string
	Filename string
	Folder   string
	Size     string
	Icon     string
	Video    bool
}

type ListView struct {
	Cards       []Card
	Placeholder *panel.Placeholder
	Type        string
	Types       []Option
}

// BuildList filters the snapshot by type and renders it. Server-relative
// URLs are resolved against mediaBase.
func BuildList(p panel.Panel[models.MediaItem], typ, mediaBase string) ListView {
	items := Filter(p.Items, typ)
	v := ListView{Type: typ, Types: TypeOptions(typ)}
	if v.Placeholder = panel.For(p, items, EmptyMessage); v.Placeholder != nil {
		return v
	}
	for _, m := range items {
		c := Card{
			URL:      format.AbsURL(mediaBase, m.URL),
			Filename: m.Filename,
			Folder:   m.Folder,
			Size:     format.KB(m.Size),
			Icon:     "📷",
			Video:    m.IsVideo(),
		}
		if c.Video {
			c.Icon = "🎥"
		}
		v.Cards = append(v.Cards, c)
	}
	return v
}

// CleanupMessage summarizes a cleanup run.
func CleanupMessage(res *models.CleanupResult) string {
	return fmt.Sprintf("Cleaned up %d files, freed %s MB", res.FilesDeleted, format.MB(res.SpaceFreed))
}
