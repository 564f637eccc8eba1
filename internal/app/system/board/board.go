// Package board owns the dashboard's in-memory snapshots.
//
// A Board holds the latest copy of every collection the dashboard shows,
// the active section, and the time of the last refresh. Loaders fetch from
// the Garden API and replace a snapshot wholesale; they never return errors.
// A failed load leaves the previous snapshot in place and marks the panel
// with its fallback message.
//
// Loads are not sequenced. If two loads of the same panel overlap, whichever
// finishes last wins, even when it started first.
package board

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/apimetrics"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"go.uber.org/zap"
)

// Fallback messages shown when a panel cannot be loaded.
const (
	FallbackTasks     = "Failed to load tasks"
	FallbackStaff     = "Failed to load staff members"
	FallbackStudents  = "Failed to load students"
	FallbackMedia     = "Failed to load media"
	FallbackActivity  = "No recent activity"
	FallbackAnalytics = "Failed to load analytics"
)

// API is the subset of the Garden client the board reads from.
type API interface {
	Workload(ctx context.Context) (*models.Workload, error)
	QueueStatus(ctx context.Context) (*models.QueueStatus, error)
	AllTasks(ctx context.Context) ([]models.Task, error)
	AllStaff(ctx context.Context) ([]models.StaffMember, error)
	AllStudents(ctx context.Context) ([]models.Student, error)
	MediaGallery(ctx context.Context) ([]models.MediaItem, error)
	RecentActivity(ctx context.Context) ([]models.Activity, error)
	Analytics(ctx context.Context, rng string) (*models.Analytics, error)
}

// Board is the dashboard view model. It is safe for concurrent use.
type Board struct {
	api     API
	log     *zap.Logger
	metrics *apimetrics.Recorder

	mu             sync.RWMutex
	active         string
	analyticsRange string
	lastUpdate     time.Time

	stats     models.Summary
	activity  panel.Panel[models.Activity]
	tasks     panel.Panel[models.Task]
	staff     panel.Panel[models.StaffMember]
	students  panel.Panel[models.Student]
	media     panel.Panel[models.MediaItem]
	analytics panel.Single[models.Analytics]
}

// New creates a Board with every panel in the loading state and the
// dashboard section active. metrics may be nil.
func New(api API, logger *zap.Logger, metrics *apimetrics.Recorder) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{
		api:            api,
		log:            logger,
		metrics:        metrics,
		active:         models.SectionDashboard,
		analyticsRange: models.RangeToday,
		activity:       panel.Panel[models.Activity]{State: panel.StateLoading},
		tasks:          panel.Panel[models.Task]{State: panel.StateLoading},
		staff:          panel.Panel[models.StaffMember]{State: panel.StateLoading},
		students:       panel.Panel[models.Student]{State: panel.StateLoading},
		media:          panel.Panel[models.MediaItem]{State: panel.StateLoading},
		analytics:      panel.Single[models.Analytics]{State: panel.StateLoading},
	}
}

// Active returns the active section id.
func (b *Board) Active() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.active
}

// SetActive records the active section. Unknown ids select the dashboard.
func (b *Board) SetActive(section string) {
	if _, ok := models.SectionTitles[section]; !ok {
		section = models.SectionDashboard
	}
	b.mu.Lock()
	b.active = section
	b.mu.Unlock()
}

// AnalyticsRange returns the range used by the analytics panel.
func (b *Board) AnalyticsRange() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.analyticsRange
}

// LastUpdate returns when Refresh last completed, or the zero time.
func (b *Board) LastUpdate() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastUpdate
}

// Stats returns the stat card values.
func (b *Board) Stats() models.Summary {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stats
}

// Activity returns the recent activity panel.
func (b *Board) Activity() panel.Panel[models.Activity] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.activity
}

// Tasks returns the tasks panel.
func (b *Board) Tasks() panel.Panel[models.Task] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tasks
}

// Staff returns the staff panel.
func (b *Board) Staff() panel.Panel[models.StaffMember] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.staff
}

// Students returns the students panel.
func (b *Board) Students() panel.Panel[models.Student] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.students
}

// Media returns the media panel.
func (b *Board) Media() panel.Panel[models.MediaItem] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.media
}

// Analytics returns the analytics panel.
func (b *Board) Analytics() panel.Single[models.Analytics] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.analytics
}
