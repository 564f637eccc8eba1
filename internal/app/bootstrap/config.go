// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/auditlog"
	"github.com/dalemusser/gardenadmin/internal/app/system/autorefresh"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Garden Admin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, garden_api_url, etc.
//   - Environment variables: GARDENADMIN_MONGO_URI, GARDENADMIN_GARDEN_API_URL, etc.
//   - Command-line flags: --mongo_uri, --garden_api_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "garden_admin", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 20, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 2, Desc: "MongoDB min connection pool size"},
	{Name: "session_key", Default: "", Desc: "Cookie signing key (blank generates a random key per run)"},
	{Name: "session_name", Default: "gardenadmin-ui", Desc: "UI state cookie name"},
	{Name: "session_domain", Default: "", Desc: "Cookie domain (blank means current host)"},

	// Garden API
	{Name: "garden_api_url", Default: "http://localhost:5000", Desc: "Garden API base URL"},
	{Name: "garden_admin_url", Default: "http://localhost:5001", Desc: "Garden admin server URL (blank to always use the primary)"},
	{Name: "admin_check_timeout", Default: "2s", Desc: "Admin server health check timeout"},
	{Name: "api_timeout", Default: "10s", Desc: "Timeout for loading a panel"},
	{Name: "action_timeout", Default: "15s", Desc: "Timeout for admin actions"},
	{Name: "report_timeout", Default: "60s", Desc: "Timeout for report downloads"},

	// Refresh
	{Name: "refresh_interval", Default: "30s", Desc: "Auto-refresh interval (5s to 1h)"},
	{Name: "auto_refresh", Default: false, Desc: "Start with auto-refresh enabled"},

	// Audit logging
	{Name: "audit_log", Default: "all", Desc: "Admin action logging: 'all' (db+log), 'db', 'log', or 'off'"},

	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics on /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// GARDENADMIN_* environment variables and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GARDENADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		SessionKey:       appValues.String("session_key"),
		SessionName:      appValues.String("session_name"),
		SessionDomain:    appValues.String("session_domain"),

		GardenAPIURL:      appValues.String("garden_api_url"),
		GardenAdminURL:    appValues.String("garden_admin_url"),
		AdminCheckTimeout: appValues.Duration("admin_check_timeout", 2*time.Second),
		APITimeout:        appValues.Duration("api_timeout", 10*time.Second),
		ActionTimeout:     appValues.Duration("action_timeout", 15*time.Second),
		ReportTimeout:     appValues.Duration("report_timeout", 60*time.Second),

		RefreshInterval: appValues.Duration("refresh_interval", autorefresh.DefaultInterval),
		AutoRefresh:     appValues.Bool("auto_refresh"),

		AuditLog:       appValues.String("audit_log"),
		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI and the Garden URLs are checked before anything
// connects, so a typo fails startup with a clear message.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database is required")
	}
	if !urlutil.IsValidAbsHTTPURL(appCfg.GardenAPIURL) {
		return fmt.Errorf("garden_api_url must be an absolute http(s) URL, got %q", appCfg.GardenAPIURL)
	}
	if appCfg.GardenAdminURL != "" && !urlutil.IsValidAbsHTTPURL(appCfg.GardenAdminURL) {
		return fmt.Errorf("garden_admin_url must be an absolute http(s) URL, got %q", appCfg.GardenAdminURL)
	}
	if appCfg.RefreshInterval < autorefresh.MinInterval || appCfg.RefreshInterval > autorefresh.MaxInterval {
		return fmt.Errorf("refresh_interval must be between %s and %s, got %s",
			autorefresh.MinInterval, autorefresh.MaxInterval, appCfg.RefreshInterval)
	}
	switch appCfg.AuditLog {
	case auditlog.ModeAll, auditlog.ModeDB, auditlog.ModeLog, auditlog.ModeOff:
	default:
		return fmt.Errorf("audit_log must be all, db, log or off, got %q", appCfg.AuditLog)
	}
	return nil
}
