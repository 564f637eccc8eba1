// internal/testutil/http.go
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/system/gardenapi"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// HTMX marks r as an HTMX request targeting target.
func HTMX(r *http.Request, target string) *http.Request {
	r.Header.Set("HX-Request", "true")
	if target != "" {
		r.Header.Set("HX-Target", target)
	}
	return r
}

// Serve calls h and swallows a panic from template rendering, which is
// not booted unless the test calls BootTemplates. Headers and API side
// effects remain observable.
func Serve(h http.HandlerFunc, w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			// Template rendering may panic in tests
		}
	}()
	h(w, r)
}

// GardenServer is a fake Garden API. Routes are keyed by "METHOD /path"
// and can be replaced while the server runs.
type GardenServer struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	hits   map[string]int
	bodies map[string][]byte
}

// NewGardenServer starts a fake Garden API that is closed when t ends.
// Unknown routes answer 404 {"error":"not found"}.
func NewGardenServer(t *testing.T) *GardenServer {
	t.Helper()
	g := &GardenServer{
		routes: map[string]http.HandlerFunc{},
		hits:   map[string]int{},
		bodies: map[string][]byte{},
	}
	g.Server = httptest.NewServer(http.HandlerFunc(g.serve))
	t.Cleanup(g.Close)
	return g
}

func (g *GardenServer) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	var body []byte
	if r.Body != nil {
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err == nil {
			body = raw
		}
	}

	g.mu.Lock()
	h := g.routes[key]
	g.hits[key]++
	if body != nil {
		g.bodies[key] = body
	}
	g.mu.Unlock()

	if h == nil {
		JSON(http.StatusNotFound, map[string]string{"error": "not found"})(w, r)
		return
	}
	h(w, r)
}

// Handle installs h for method and path.
func (g *GardenServer) Handle(method, path string, h http.HandlerFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.routes[method+" "+path] = h
}

// Hits returns how many times method and path were requested.
func (g *GardenServer) Hits(method, path string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hits[method+" "+path]
}

// Body decodes the last JSON body sent to method and path into out.
func (g *GardenServer) Body(method, path string, out any) bool {
	g.mu.Lock()
	b := g.bodies[method+" "+path]
	g.mu.Unlock()
	if b == nil {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

// JSON returns a handler that writes v with status.
func JSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Client returns a Garden API client pointed at g.
func (g *GardenServer) Client() *gardenapi.Client {
	return gardenapi.New(gardenapi.Config{
		BaseURL:    g.URL,
		HTTPClient: g.Server.Client(),
		Logger:     zap.NewNop(),
	})
}
