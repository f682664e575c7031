// Package kernel builds the application's http.Handler: global middleware
// stack, operational endpoints, static storage serving, and the API routes.
package kernel

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/rajsingh19/wearhouse/app/routes"
	"github.com/rajsingh19/wearhouse/pkg/database"
	"github.com/rajsingh19/wearhouse/pkg/metrics"
	"github.com/rajsingh19/wearhouse/pkg/middleware"
	"github.com/rajsingh19/wearhouse/pkg/reqid"
	"github.com/rajsingh19/wearhouse/pkg/response"
	"github.com/rajsingh19/wearhouse/pkg/router"
	"github.com/rajsingh19/wearhouse/pkg/storage"
)

// NewHandler assembles the full HTTP handler. db and disk are injected so
// tests can run the whole stack against sqlite and a temp-dir disk.
func NewHandler(db *gorm.DB, disk storage.Disk) http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Request ID         — inject unique ID before anything logs
	//  3. Recovery           — catches panics before they kill the goroutine
	//  4. Logger             — logs request_id from context
	//  5. CORS               — set CORS headers
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	r.Get("/health", "health", healthHandler(db))
	r.Get("/metrics", "metrics", metrics.Handler())

	// Locally stored uploads are served under /storage.
	if root := storage.LocalRoot(); root != "" {
		r.Mount("/storage", http.StripPrefix("/storage/", http.FileServer(http.Dir(root))))
	}

	routes.RegisterAPI(r, db, disk)

	return r.Handler()
}

// healthHandler reports process liveness and database reachability.
func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		dbStatus := "ok"
		if err := database.Ping(db); err != nil {
			status = "degraded"
			dbStatus = err.Error()
		}
		response.JSON(w, http.StatusOK, map[string]string{
			"status":   status,
			"database": dbStatus,
		})
	}
}
