// internal/domain/models/media.go
package models

// Media types reported by the gallery endpoint.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaItem is an uploaded, processed, or completion file on the Garden server.
type MediaItem struct {
	Filename string `json:"filename"`
	Folder   string `json:"folder"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Modified string `json:"modified"`
}

// IsVideo reports whether the item should be rendered as a video.
func (m MediaItem) IsVideo() bool {
	return m.Type == MediaTypeVideo
}

// CleanupResult is returned after deleting old media files.
type CleanupResult struct {
	FilesDeleted int    `json:"filesDeleted"`
	SpaceFreed   int64  `json:"spaceFreed"`
	Message      string `json:"message"`
}
