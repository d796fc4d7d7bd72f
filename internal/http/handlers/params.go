package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// titleParam returns the decoded {title} path segment. chi matches against
// RawPath when the request needed it (for example an escaped "/"), in which
// case the parameter is still escaped.
func titleParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "title")
	if r.URL.RawPath == "" {
		return raw, nil
	}
	title, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid title: %w", err)
	}
	return title, nil
}

// yearQuery parses the optional ?year= query parameter
func yearQuery(r *http.Request) (*uint16, error) {
	s := r.URL.Query().Get("year")
	if s == "" {
		return nil, nil
	}
	year, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", s)
	}
	y := uint16(year)
	return &y, nil
}

// numberParam parses a series or episode number path segment
func numberParam(r *http.Request, name string) (uint16, error) {
	s := chi.URLParam(r, name)
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return uint16(n), nil
}

// titleAndYear reads the two parameters every lookup route takes
func titleAndYear(r *http.Request) (string, *uint16, error) {
	title, err := titleParam(r)
	if err != nil {
		return "", nil, err
	}
	year, err := yearQuery(r)
	if err != nil {
		return "", nil, err
	}
	return title, year, nil
}

// TitleURL builds a path addressing a movie or show title below prefix
func TitleURL(prefix, title string, year *uint16) string {
	u := prefix + "/" + url.PathEscape(title)
	if year != nil {
		u += "?year=" + strconv.FormatUint(uint64(*year), 10)
	}
	return u
}

// EpisodeURL builds a path addressing one episode below prefix
func EpisodeURL(prefix, title string, year *uint16, series, episode uint16) string {
	u := fmt.Sprintf("%s/%s/%d/%d", prefix, url.PathEscape(title), series, episode)
	if year != nil {
		u += "?year=" + strconv.FormatUint(uint64(*year), 10)
	}
	return u
}
