package http

import (
	"net/http"

	"github.com/carolus-media/carolus/internal/http/handlers"
	"github.com/carolus-media/carolus/internal/httputil"
	"github.com/carolus-media/carolus/internal/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router. The resolver is shared
// read-only by every request; handlers never mutate it.
func NewRouter(resolver media.Resolver, templates *handlers.Templates, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RecoverMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Compress(5))

	// Handlers
	mediaHandler := handlers.NewMediaHandler(resolver, logger)
	pageHandler := handlers.NewPageHandler(resolver, templates, logger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"movies": len(resolver.ListMovies()),
			"shows":  len(resolver.ListShows()),
		})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", mediaHandler.ListMovies)
			r.Get("/play/{title}", mediaHandler.PlayMovie)
			r.Get("/{title}", mediaHandler.GetMovie)
		})

		r.Route("/tv", func(r chi.Router) {
			r.Get("/", mediaHandler.ListShows)
			r.Get("/play/{title}/{series}/{episode}", mediaHandler.PlayEpisode)
			r.Get("/{title}", mediaHandler.GetShow)
			r.Get("/{title}/{series}", mediaHandler.GetSeries)
			r.Get("/{title}/{series}/{episode}", mediaHandler.GetEpisode)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			httputil.RespondErrorMessage(w, http.StatusNotFound, "route not found")
		})
	})

	// HTML pages
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/movies", http.StatusFound)
	})
	r.Get("/movies", pageHandler.Movies)
	r.Get("/movie/{title}", pageHandler.Movie)
	r.Get("/tv", pageHandler.Shows)
	r.Get("/tv/{title}", pageHandler.Show)
	r.Get("/about", pageHandler.About)
	r.NotFound(pageHandler.NotFound)

	return r
}
