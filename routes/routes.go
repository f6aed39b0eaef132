package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hmendez/bookshelf-api/app"
	"github.com/hmendez/bookshelf-api/handlers"
	"github.com/hmendez/bookshelf-api/utils"
)

// SetupRoutes configures all application routes and middleware.
//
// The two JSON endpoints are always registered. In production mode the
// frontend bundle is additionally served from the configured directory,
// with a catch-all falling back to index.html for client-side routing.
// Outside production the frontend is served separately, so unmatched
// paths get a JSON 404 instead.
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware: the dev frontend runs on its own origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.HealthCheck(deps))
	r.Get("/books", handlers.BooksHandler(deps))

	if deps.Config.IsProduction() {
		spa := handlers.NewSPAHandler(deps.Config.FrontendDir)
		r.Get("/*", spa.ServeHTTP)
	} else {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			_ = utils.WriteNotFound(w, "endpoint not found")
		})
	}

	return r
}
