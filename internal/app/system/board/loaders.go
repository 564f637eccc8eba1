// internal/app/system/board/loaders.go
package board

import (
	"context"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// setList replaces p with a fresh snapshot on success. On failure the old
// items stay and the panel switches to its fallback message.
func setList[T any](p *panel.Panel[T], items []T, err error, fallback string) {
	if err != nil {
		p.State = panel.StateError
		p.Fallback = fallback
		p.Err = err
		return
	}
	if items == nil {
		items = []T{}
	}
	p.Items = items
	p.State = panel.StateReady
	p.Fallback = ""
	p.Err = nil
	p.LoadedAt = time.Now()
}

func (b *Board) failed(name string, err error) {
	b.metrics.PanelFailure(name)
	b.log.Warn("panel load failed", zap.String("panel", name), zap.Error(err))
}

func fetchCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeouts.Fetch())
}

// LoadStats fetches workload, queue status and students concurrently and
// rebuilds the stat cards. A failed source contributes zeros.
func (b *Board) LoadStats(ctx context.Context) {
	ctx, cancel := fetchCtx(ctx)
	defer cancel()

	var (
		g        errgroup.Group
		workload *models.Workload
		queue    *models.QueueStatus
		students []models.Student
	)
	g.Go(func() error {
		w, err := b.api.Workload(ctx)
		if err != nil {
			b.failed("stats_workload", err)
			return nil
		}
		workload = w
		return nil
	})
	g.Go(func() error {
		q, err := b.api.QueueStatus(ctx)
		if err != nil {
			b.failed("stats_queue", err)
			return nil
		}
		queue = q
		return nil
	})
	g.Go(func() error {
		s, err := b.api.AllStudents(ctx)
		if err != nil {
			b.failed("stats_students", err)
			return nil
		}
		students = s
		return nil
	})
	_ = g.Wait()

	var sum models.Summary
	if workload != nil {
		sum.TotalStaff = workload.TotalStaff
		sum.TotalTasks = workload.TotalTasksInSystem
		sum.PendingTasks = workload.TotalPendingInSystem
		sum.CompletedTasks = workload.TotalCompletedInSystem
	}
	if queue != nil {
		sum.QueuedTasks = queue.QueueLength
	}
	sum.TotalStudents = len(students)

	b.mu.Lock()
	b.stats = sum
	b.mu.Unlock()
}

// LoadRecentActivity replaces the activity feed.
func (b *Board) LoadRecentActivity(ctx context.Context) {
	ctx, cancel := fetchCtx(ctx)
	defer cancel()

	items, err := b.api.RecentActivity(ctx)
	if err != nil {
		b.failed("activity", err)
	}
	b.mu.Lock()
	setList(&b.activity, items, err, FallbackActivity)
	b.mu.Unlock()
}

// loadCharts is where chart data would be fetched. The charts panel is a
// static placeholder, so there is nothing to load.
func (b *Board) loadCharts(context.Context) {}

// LoadDashboard loads the stat cards, the activity feed and the charts
// concurrently and returns when all three are done.
func (b *Board) LoadDashboard(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { b.LoadStats(ctx); return nil })
	g.Go(func() error { b.LoadRecentActivity(ctx); return nil })
	g.Go(func() error { b.loadCharts(ctx); return nil })
	_ = g.Wait()
}

// LoadTasks replaces the tasks snapshot.
func (b *Board) LoadTasks(ctx context.Context) {
	ctx, cancel := fetchCtx(ctx)
	defer cancel()

	items, err := b.api.AllTasks(ctx)
	if err != nil {
		b.failed("tasks", err)
	}
	b.mu.Lock()
	setList(&b.tasks, items, err, FallbackTasks)
	b.mu.Unlock()
}

// LoadStaff replaces the staff snapshot. When /admin/all_staff answers with
// an error status the workload listing is used instead; a transport failure
// is not retried.
func (b *Board) LoadStaff(ctx context.Context) {
	ctx, cancel := fetchCtx(ctx)
	defer cancel()

	items, err := b.api.AllStaff(ctx)
	if err != nil && gardenapi.StatusOf(err) != 0 {
		b.log.Info("all_staff unavailable, falling back to workload", zap.Error(err))
		var w *models.Workload
		w, err = b.api.Workload(ctx)
		if err == nil {
			items = w.Workload
		}
	}
	if err != nil {
		b.failed("staff", err)
	}
	b.mu.Lock()
	setList(&b.staff, items, err, FallbackStaff)
	b.mu.Unlock()
}

// LoadStudents replaces the students snapshot.
func (b *Board) LoadStudents(ctx context.Context) {
	ctx, cancel := fetchCtx(ctx)
	defer cancel()

	items, err := b.api.AllStudents(ctx)
	if err != nil {
		b.failed("students", err)
	}
	b.mu.Lock()
	setList(&b.students, items, err, FallbackStudents)
	b.mu.Unlock()
}

// LoadMedia replaces the media snapshot.
func (b *Board) LoadMedia(ctx context.Context) {
	ctx, cancel := fetchCtx(ctx)
	defer cancel()

	items, err := b.api.MediaGallery(ctx)
	if err != nil {
		b.failed("media", err)
	}
	b.mu.Lock()
	setList(&b.media, items, err, FallbackMedia)
	b.mu.Unlock()
}

// LoadAnalytics loads the analytics summary for rng. An empty or unknown
// range keeps the current one.
func (b *Board) LoadAnalytics(ctx context.Context, rng string) {
	b.mu.Lock()
	if models.IsValidRange(rng) {
		b.analyticsRange = rng
	}
	rng = b.analyticsRange
	b.mu.Unlock()

	ctx, cancel := fetchCtx(ctx)
	defer cancel()

	a, err := b.api.Analytics(ctx, rng)
	if err != nil {
		b.failed("analytics", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.analytics.State = panel.StateError
		b.analytics.Fallback = FallbackAnalytics
		b.analytics.Err = err
		return
	}
	b.analytics = panel.Single[models.Analytics]{
		Value:    a,
		State:    panel.StateReady,
		LoadedAt: time.Now(),
	}
}

// LoadSection runs the loader for section. Sections without remote data
// (notifications, settings) load nothing.
func (b *Board) LoadSection(ctx context.Context, section string) {
	switch section {
	case models.SectionDashboard:
		b.LoadDashboard(ctx)
	case models.SectionTasks:
		b.LoadTasks(ctx)
	case models.SectionStaff:
		b.LoadStaff(ctx)
	case models.SectionStudents:
		b.LoadStudents(ctx)
	case models.SectionMedia:
		b.LoadMedia(ctx)
	case models.SectionAnalytics:
		b.LoadAnalytics(ctx, "")
	}
}

// Refresh reloads the stat cards and the active section, then stamps the
// last update time.
func (b *Board) Refresh(ctx context.Context) {
	active := b.Active()
	if active == models.SectionDashboard {
		b.LoadDashboard(ctx)
	} else {
		var g errgroup.Group
		g.Go(func() error { b.LoadStats(ctx); return nil })
		g.Go(func() error { b.LoadSection(ctx, active); return nil })
		_ = g.Wait()
	}

	b.mu.Lock()
	b.lastUpdate = time.Now()
	b.mu.Unlock()
}
