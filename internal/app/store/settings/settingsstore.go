// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// docID is the _id of the single settings document.
const docID = "dashboard"

// Store provides access to the dashboard_settings collection.
// The dashboard has one settings document.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("dashboard_settings")}
}

// Get returns the saved settings, or the defaults when none are saved.
func (s *Store) Get(ctx context.Context) (models.DashboardSettings, error) {
	var settings models.DashboardSettings
	err := s.c.FindOne(ctx, bson.M{"_id": docID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		d := models.DefaultDashboardSettings()
		d.ID = docID
		return d, nil
	}
	if err != nil {
		return models.DashboardSettings{}, err
	}
	return settings, nil
}

// Save writes the settings, creating the document if needed.
func (s *Store) Save(ctx context.Context, settings models.DashboardSettings) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"refresh_interval_secs": settings.RefreshIntervalSecs,
			"auto_refresh":          settings.AutoRefresh,
			"max_image_size_mb":     settings.MaxImageSizeMB,
			"max_video_size_mb":     settings.MaxVideoSizeMB,
			"updated_at":            now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": docID}, update, opts)
	return err
}

// Exists reports whether settings have been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": docID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
