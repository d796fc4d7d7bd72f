package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/carolus-media/carolus/internal/media"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the library once and print the catalog",
	Long: `Index the configured library and print what was found.

Examples:
  carolus index --movies /srv/movies --tv /srv/tv
  carolus index --json | jq '.movies[].title'`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	addLibraryFlags(indexCmd)
	indexCmd.Flags().Bool("json", false, "Output as JSON")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return writeCatalogJSON(cmd.OutOrStdout(), catalog)
	}
	return writeCatalog(cmd.OutOrStdout(), catalog)
}

// catalogJSON is the --json representation of a catalog
type catalogJSON struct {
	Fingerprint string         `json:"fingerprint"`
	Movies      []media.Movie  `json:"movies"`
	Shows       []media.TvShow `json:"shows"`
}

func writeCatalogJSON(w io.Writer, catalog *media.Catalog) error {
	out := catalogJSON{
		Fingerprint: catalog.Fingerprint(),
		Movies:      catalog.Movies(),
		Shows:       catalog.Shows(),
	}
	if out.Movies == nil {
		out.Movies = []media.Movie{}
	}
	if out.Shows == nil {
		out.Shows = []media.TvShow{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeCatalog prints an indented listing: movies first, then each show with
// its series and episodes
func writeCatalog(w io.Writer, catalog *media.Catalog) error {
	movies := catalog.Movies()
	shows := catalog.Shows()

	p := &printer{w: w}
	p.printf("Movies (%d)\n", len(movies))
	for _, m := range movies {
		p.printf("  %s (%s)  %s\n", m.Title, media.FormatYear(m.Year), m.FilePath)
	}

	p.printf("\nTV (%d)\n", len(shows))
	for _, show := range shows {
		p.printf("  %s (%s)\n", show.Title, media.FormatYear(show.Year))
		for _, series := range show.Series {
			p.printf("    Series %d\n", series.SeriesNumber)
			for _, ep := range series.Episodes {
				p.printf("      E%02d  %s\n", ep.EpisodeNumber, ep.FilePath)
			}
		}
	}

	return p.err
}

// printer remembers the first write error so the listing code stays linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
