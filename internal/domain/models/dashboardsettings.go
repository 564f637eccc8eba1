// internal/domain/models/dashboardsettings.go
package models

import "time"

// DashboardSettings are the operator preferences saved from the settings page.
type DashboardSettings struct {
	ID string `bson:"_id" json:"-"`

	RefreshIntervalSecs int  `bson:"refresh_interval_secs" json:"refresh_interval_secs"`
	AutoRefresh         bool `bson:"auto_refresh" json:"auto_refresh"`
	MaxImageSizeMB      int  `bson:"max_image_size_mb" json:"max_image_size_mb"`
	MaxVideoSizeMB      int  `bson:"max_video_size_mb" json:"max_video_size_mb"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Defaults used when no settings document exists.
const (
	DefaultRefreshIntervalSecs = 30
	DefaultMaxImageSizeMB      = 10
	DefaultMaxVideoSizeMB      = 50

	MinRefreshIntervalSecs = 5
	MaxRefreshIntervalSecs = 3600
)

// DefaultDashboardSettings returns the settings used before any are saved.
func DefaultDashboardSettings() DashboardSettings {
	return DashboardSettings{
		RefreshIntervalSecs: DefaultRefreshIntervalSecs,
		MaxImageSizeMB:      DefaultMaxImageSizeMB,
		MaxVideoSizeMB:      DefaultMaxVideoSizeMB,
	}
}

// RefreshInterval returns the interval as a duration, clamped to the
// allowed bounds.
func (s DashboardSettings) RefreshInterval() time.Duration {
	secs := s.RefreshIntervalSecs
	if secs < MinRefreshIntervalSecs {
		secs = MinRefreshIntervalSecs
	}
	if secs > MaxRefreshIntervalSecs {
		secs = MaxRefreshIntervalSecs
	}
	return time.Duration(secs) * time.Second
}
