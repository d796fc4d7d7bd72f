package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/carolus-media/carolus/internal/media"
	"go.uber.org/zap"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	resolver  media.Resolver
	templates *Templates
	logger    *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(resolver media.Resolver, templates *Templates, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		resolver:  resolver,
		templates: templates,
		logger:    logger,
	}
}

// Movies handles GET /movies
func (h *PageHandler) Movies(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "movies", Meta{Title: "Movies", Description: "All movies"}, h.resolver.ListMovies())
}

// Movie handles GET /movie/{title}
func (h *PageHandler) Movie(w http.ResponseWriter, r *http.Request) {
	title, year, err := titleAndYear(r)
	if err != nil {
		h.Error(w, http.StatusBadRequest, err)
		return
	}

	movie, err := h.resolver.FindMovie(title, year)
	if err != nil {
		h.lookupError(w, err)
		return
	}

	h.render(w, http.StatusOK, "movie", Meta{Title: movie.Title, Description: "Watch " + movie.Title}, movie)
}

// Shows handles GET /tv
func (h *PageHandler) Shows(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "shows", Meta{Title: "TV", Description: "All TV shows"}, h.resolver.ListShows())
}

// Show handles GET /tv/{title}
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	title, year, err := titleAndYear(r)
	if err != nil {
		h.Error(w, http.StatusBadRequest, err)
		return
	}

	show, err := h.resolver.FindShow(title, year)
	if err != nil {
		h.lookupError(w, err)
		return
	}

	h.render(w, http.StatusOK, "show", Meta{Title: show.Title, Description: "Episodes of " + show.Title}, show)
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "about", Meta{Title: "About", Description: "About Carolus"}, nil)
}

// NotFound renders the error page for unknown routes
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Error(w, http.StatusNotFound, fmt.Errorf("'%s' was not found", r.URL.Path))
}

// Error renders the error page with the given status
func (h *PageHandler) Error(w http.ResponseWriter, status int, err error) {
	h.render(w, status, "error", Meta{Title: http.StatusText(status), Description: "Error page"}, err.Error())
}

func (h *PageHandler) lookupError(w http.ResponseWriter, err error) {
	if media.IsNotFound(err) {
		h.Error(w, http.StatusNotFound, err)
		return
	}
	h.logger.Error("lookup failed", zap.Error(err))
	h.Error(w, http.StatusInternalServerError, fmt.Errorf("there was an error looking up the page"))
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, meta Meta, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// buffer so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, name, meta, data); err != nil {
		h.logger.Error("failed to render page", zap.String("template", name), zap.Error(err))
		http.Error(w, "There was an error rendering the HTML page.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write page", zap.Error(err))
	}
}
