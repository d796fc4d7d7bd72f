package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/carolus-media/carolus/internal/media"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists the page templates; each is parsed together with base.html
var pageNames = []string{"movies", "movie", "shows", "show", "about", "error"}

// Templates is the parsed set of HTML pages. It is built once at startup and
// injected into the page handler.
type Templates struct {
	pages map[string]*template.Template
}

// NewTemplates parses every embedded page template
func NewTemplates() (*Templates, error) {
	funcs := template.FuncMap{
		"year":        media.FormatYear,
		"movieURL":    func(title string, year *uint16) string { return TitleURL("/movie", title, year) },
		"showURL":     func(title string, year *uint16) string { return TitleURL("/tv", title, year) },
		"playMovie":   func(title string, year *uint16) string { return TitleURL("/api/movies/play", title, year) },
		"playEpisode": playEpisodeURL,
	}

	t := &Templates{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		page, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		t.pages[name] = page
	}

	return t, nil
}

func playEpisodeURL(title string, year *uint16, series, episode uint16) string {
	return EpisodeURL("/api/tv/play", title, year, series, episode)
}

// Meta describes a page for the <head> section
type Meta struct {
	Title       string
	Description string
}

// payload is the value every page template renders
type payload struct {
	Meta Meta
	Data any
}

// Render executes the named page into w
func (t *Templates) Render(w io.Writer, name string, meta Meta, data any) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}

	if err := page.ExecuteTemplate(w, "base", payload{Meta: meta, Data: data}); err != nil {
		return fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return nil
}
