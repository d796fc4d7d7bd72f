package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/carolus-media/carolus/internal/httputil"
	"github.com/carolus-media/carolus/internal/media"
	"go.uber.org/zap"
)

// MediaHandler serves the JSON catalog API and file playback
type MediaHandler struct {
	resolver media.Resolver
	logger   *zap.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(resolver media.Resolver, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// ListResponse is the envelope for list endpoints
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// ListMovies handles GET /api/movies
func (h *MediaHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	if httputil.CheckETag(w, r, h.resolver.Fingerprint()) {
		return
	}
	httputil.RespondJSON(w, http.StatusOK, newListResponse(h.resolver.ListMovies()))
}

// GetMovie handles GET /api/movies/{title}
func (h *MediaHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	title, year, err := titleAndYear(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return
	}

	movie, err := h.resolver.FindMovie(title, year)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, movie)
}

// PlayMovie handles GET /api/movies/play/{title}
func (h *MediaHandler) PlayMovie(w http.ResponseWriter, r *http.Request) {
	title, year, err := titleAndYear(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return
	}

	movie, err := h.resolver.FindMovie(title, year)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	h.serveFile(w, r, movie.FilePath)
}

// ListShows handles GET /api/tv
func (h *MediaHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	if httputil.CheckETag(w, r, h.resolver.Fingerprint()) {
		return
	}
	httputil.RespondJSON(w, http.StatusOK, newListResponse(h.resolver.ListShows()))
}

// GetShow handles GET /api/tv/{title}
func (h *MediaHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	title, year, err := titleAndYear(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return
	}

	show, err := h.resolver.FindShow(title, year)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, show)
}

// GetSeries handles GET /api/tv/{title}/{series}
func (h *MediaHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	title, year, err := titleAndYear(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return
	}
	series, err := numberParam(r, "series")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return
	}

	match, err := h.resolver.FindSeries(title, year, series)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, match)
}

// GetEpisode handles GET /api/tv/{title}/{series}/{episode}
func (h *MediaHandler) GetEpisode(w http.ResponseWriter, r *http.Request) {
	match, ok := h.findEpisode(w, r)
	if !ok {
		return
	}
	httputil.RespondJSON(w, http.StatusOK, match)
}

// PlayEpisode handles GET /api/tv/play/{title}/{series}/{episode}
func (h *MediaHandler) PlayEpisode(w http.ResponseWriter, r *http.Request) {
	match, ok := h.findEpisode(w, r)
	if !ok {
		return
	}
	h.serveFile(w, r, match.Episode.FilePath)
}

func (h *MediaHandler) findEpisode(w http.ResponseWriter, r *http.Request) (media.EpisodeMatch, bool) {
	title, year, err := titleAndYear(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return media.EpisodeMatch{}, false
	}
	series, err := numberParam(r, "series")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return media.EpisodeMatch{}, false
	}
	episode, err := numberParam(r, "episode")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err, "invalid request")
		return media.EpisodeMatch{}, false
	}

	match, err := h.resolver.FindEpisode(title, year, series, episode)
	if err != nil {
		h.respondLookupError(w, err)
		return media.EpisodeMatch{}, false
	}
	return match, true
}

// respondLookupError maps a resolver error to a response. Misses are an
// expected outcome and are not logged.
func (h *MediaHandler) respondLookupError(w http.ResponseWriter, err error) {
	if media.IsNotFound(err) {
		httputil.RespondError(w, http.StatusNotFound, err, "not found")
		return
	}
	httputil.LogError(h.logger, err, "lookup failed")
	httputil.RespondErrorMessage(w, http.StatusInternalServerError, "lookup failed")
}

// serveFile transfers a catalog file. The path was valid at index time but
// may have disappeared since.
func (h *MediaHandler) serveFile(w http.ResponseWriter, r *http.Request, path string) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("indexed file no longer available", zap.String("path", path))
			httputil.RespondErrorMessage(w, http.StatusNotFound, "file no longer available")
			return
		}
		httputil.LogError(h.logger, err, "failed to open media file", zap.String("path", path))
		httputil.RespondErrorMessage(w, http.StatusInternalServerError, "failed to open media file")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		h.logger.Warn("indexed path is not a regular file", zap.String("path", path), zap.Error(err))
		httputil.RespondErrorMessage(w, http.StatusNotFound, "file no longer available")
		return
	}

	if contentType, ok := contentTypes[filepath.Ext(path)]; ok {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

var contentTypes = map[string]string{
	".ogg":  "video/ogg",
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".webm": "video/webm",
}
