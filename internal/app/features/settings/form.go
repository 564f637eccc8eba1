// internal/app/features/settings/form.go
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

// Form is the submitted settings form.
type Form struct {
	RefreshInterval string
	MaxImageSize    string
	MaxVideoSize    string
	AutoRefresh     bool
}

// Parse validates f. It returns the settings to save, or a message for the
// first invalid field.
func (f Form) Parse() (models.DashboardSettings, string) {
	var s models.DashboardSettings

	secs, err := strconv.Atoi(strings.TrimSpace(f.RefreshInterval))
	if err != nil || secs < models.MinRefreshIntervalSecs || secs > models.MaxRefreshIntervalSecs {
		return s, fmt.Sprintf("Refresh interval must be between %d and %d seconds.",
			models.MinRefreshIntervalSecs, models.MaxRefreshIntervalSecs)
	}
	img, err := strconv.Atoi(strings.TrimSpace(f.MaxImageSize))
	if err != nil || img <= 0 {
		return s, "Max image size must be a positive number of MB."
	}
	vid, err := strconv.Atoi(strings.TrimSpace(f.MaxVideoSize))
	if err != nil || vid <= 0 {
		return s, "Max video size must be a positive number of MB."
	}

	s.RefreshIntervalSecs = secs
	s.MaxImageSizeMB = img
	s.MaxVideoSizeMB = vid
	s.AutoRefresh = f.AutoRefresh
	return s, ""
}

// Details summarizes s for the audit trail.
func Details(s models.DashboardSettings) map[string]string {
	return map[string]string{
		"refresh_interval_secs": strconv.Itoa(s.RefreshIntervalSecs),
		"auto_refresh":          strconv.FormatBool(s.AutoRefresh),
		"max_image_size_mb":     strconv.Itoa(s.MaxImageSizeMB),
		"max_video_size_mb":     strconv.Itoa(s.MaxVideoSizeMB),
	}
}
