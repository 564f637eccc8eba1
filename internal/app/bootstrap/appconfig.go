// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging and request limits; everything specific to the
// dashboard lives here.
type AppConfig struct {
	// MongoDB holds dashboard settings and the audit trail.
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// UI state cookie
	SessionKey    string // Secret key for signing cookies (must be strong in production)
	SessionName   string // Cookie name (default: gardenadmin-ui)
	SessionDomain string // Cookie domain (blank means current host)

	// Garden API
	GardenAPIURL      string        // Primary server, e.g. http://localhost:5000
	GardenAdminURL    string        // Optional admin server, e.g. http://localhost:5001
	AdminCheckTimeout time.Duration // Admin server health check
	APITimeout        time.Duration // Panel loads
	ActionTimeout     time.Duration // Admin actions
	ReportTimeout     time.Duration // Report downloads

	// Refresh defaults, used until settings are saved
	RefreshInterval time.Duration
	AutoRefresh     bool

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLog string

	// Expose /metrics
	MetricsEnabled bool
}
