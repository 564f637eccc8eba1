package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Garden is the upstream health check.
type Garden interface {
	Health(ctx context.Context) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Garden Garden
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client, the Garden
// API client and logger.
func NewHandler(client *mongo.Client, garden Garden, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Garden: garden,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Garden   string `json:"garden"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "garden":"reachable" }
//
// When only the Garden API is down: 200 and status "degraded". The
// dashboard still serves its last snapshots.
//
// On DB failure: 503 and
//
//	{ "status":"error", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Health())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
		Garden:   "reachable",
	}

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Garden = ""
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	if h.Garden != nil {
		if err := h.Garden.Health(ctx); err != nil {
			h.Log.Warn("health-check: garden api unreachable", zap.Error(err))
			resp.Status = "degraded"
			resp.Garden = "unreachable"
			resp.Message = "Garden API unavailable"
			resp.Error = err.Error()
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}
