// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	auditstore "github.com/dalemusser/gardenadmin/internal/app/store/audit"
	"github.com/dalemusser/gardenadmin/internal/app/system/apimetrics"
	"github.com/dalemusser/gardenadmin/internal/app/system/autorefresh"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB and builds the Garden API client, the
// board and the refresh controller.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetAppName("gardenadmin")
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	if appCfg.MongoMinPoolSize > 0 {
		opts.SetMinPoolSize(appCfg.MongoMinPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	var metrics *apimetrics.Recorder
	if appCfg.MetricsEnabled {
		metrics = apimetrics.New()
	}

	garden := gardenapi.New(gardenapi.Config{
		BaseURL:  appCfg.GardenAPIURL,
		AdminURL: appCfg.GardenAdminURL,
		Logger:   logger.Named("garden"),
		Metrics:  metrics,
	})
	b := board.New(garden, logger.Named("board"), metrics)
	refresh := autorefresh.New(b, autorefresh.Options{
		Interval: appCfg.RefreshInterval,
		Logger:   logger.Named("autorefresh"),
		Metrics:  metrics,
	})

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		Garden:        garden,
		Metrics:       metrics,
		Board:         b,
		Refresh:       refresh,
	}, nil
}

// EnsureSchema creates the audit trail indexes.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := auditstore.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		logger.Error("audit index setup failed", zap.Error(err))
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	return nil
}
