// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/gardenadmin/internal/app/system/apimetrics"
	"github.com/dalemusser/gardenadmin/internal/app/system/autorefresh"
	"github.com/dalemusser/gardenadmin/internal/app/system/board"
	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and back-end dependencies for the app.
//
// Everything here is constructed in ConnectDB without touching the network
// beyond the Mongo ping; Startup does the first Garden API calls.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Garden  *gardenapi.Client
	Metrics *apimetrics.Recorder
	Board   *board.Board
	Refresh *autorefresh.Controller
}
