// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/gardenadmin/internal/app/resources"
	settingsstore "github.com/dalemusser/gardenadmin/internal/app/store/settings"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/dalemusser/gardenadmin/internal/app/system/viewdata"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It registers the shared templates, applies the configured timeouts,
// picks the admin or primary Garden server, loads the first snapshot and
// starts auto-refresh when the saved settings (or config) ask for it.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Health: appCfg.AdminCheckTimeout,
		Fetch:  appCfg.APITimeout,
		Action: appCfg.ActionTimeout,
		Report: appCfg.ReportTimeout,
	})

	deps.Garden.DetectAdmin(ctx)

	viewdata.SetStatusLoader(func() viewdata.Status {
		return viewdata.Status{
			LastUpdate:  deps.Board.LastUpdate(),
			AutoRefresh: deps.Refresh.Enabled(),
			Interval:    deps.Refresh.Interval(),
		}
	})

	s, saved := refreshPrefs(ctx, settingsstore.New(deps.MongoDatabase), appCfg, logger)
	if saved {
		logger.Info("using saved dashboard settings",
			zap.Int("refresh_interval_secs", s.RefreshIntervalSecs),
			zap.Bool("auto_refresh", s.AutoRefresh))
	}

	deps.Board.Refresh(ctx)

	deps.Refresh.SetInterval(s.RefreshInterval())
	if s.AutoRefresh {
		deps.Refresh.Enable(s.RefreshInterval())
	}
	return nil
}

// refreshPrefs returns the saved settings when a settings document exists,
// and settings built from config otherwise. A read error falls back to
// config.
func refreshPrefs(ctx context.Context, store *settingsstore.Store, appCfg AppConfig, logger *zap.Logger) (models.DashboardSettings, bool) {
	fromConfig := models.DefaultDashboardSettings()
	fromConfig.RefreshIntervalSecs = int(appCfg.RefreshInterval.Seconds())
	fromConfig.AutoRefresh = appCfg.AutoRefresh

	ctx, cancel := context.WithTimeout(ctx, timeouts.Fetch())
	defer cancel()

	ok, err := store.Exists(ctx)
	if err != nil {
		logger.Warn("settings lookup failed; using config", zap.Error(err))
		return fromConfig, false
	}
	if !ok {
		return fromConfig, false
	}
	s, err := store.Get(ctx)
	if err != nil {
		logger.Warn("settings load failed; using config", zap.Error(err))
		return fromConfig, false
	}
	return s, true
}
