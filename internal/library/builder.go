package library

import (
	"maps"
	"path/filepath"
	"slices"

	"github.com/carolus-media/carolus/internal/media"

	"go.uber.org/zap"
)

// =============================================================================
// Builder - Builds the in-memory catalog from the configured roots
// =============================================================================
// The Builder is responsible for:
//   1. Listing movie files in the movie root and parsing each name
//   2. Listing show directories in the TV root, parsing each show title and
//      assembling its series
//   3. Deduplicating movies and shows on (title, year)
//   4. Handing the results to media.NewCatalog for ordering
//
// Build runs synchronously and to completion. Individual file and show
// failures are logged and skipped; only a root that cannot be enumerated
// fails the build.
// =============================================================================

type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a new catalog builder
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build indexes both roots. An empty root path means "not configured" and
// yields an empty half of the catalog.
func (b *Builder) Build(movieRoot, tvRoot string) (*media.Catalog, error) {
	movies, err := b.indexMovies(movieRoot)
	if err != nil {
		return nil, err
	}

	shows, err := b.indexShows(tvRoot)
	if err != nil {
		return nil, err
	}

	catalog := media.NewCatalog(movies, shows)

	b.logger.Info("catalog built",
		zap.Int("movies", len(catalog.Movies())),
		zap.Int("shows", len(catalog.Shows())),
		zap.String("fingerprint", catalog.Fingerprint()))

	return catalog, nil
}

// =============================================================================
// indexMovies - Parse every media file directly inside the movie root
// =============================================================================
// Files are visited in lexical order, so when two files parse to the same
// (title, year) the lexicographically greatest file name wins.
// =============================================================================

func (b *Builder) indexMovies(root string) ([]media.Movie, error) {
	if root == "" {
		b.logger.Info("movie root not configured")
		return nil, nil
	}

	root = absPath(root)
	files, err := ListMediaFiles(root)
	if err != nil {
		return nil, &RootError{Kind: media.MediaKindMovie, Path: root, Err: err}
	}

	b.logger.Info("indexing movies", zap.String("root", root), zap.Int("files", len(files)))

	byKey := make(map[media.Key]media.Movie)
	for _, file := range files {
		movie, err := ParseMovie(file)
		if err != nil {
			b.logger.Warn("could not parse movie file", zap.String("path", file), zap.Error(err))
			continue
		}

		b.logger.Debug("found movie",
			zap.String("title", movie.Title),
			zap.String("year", media.FormatYear(movie.Year)),
			zap.String("path", movie.FilePath))

		key := media.KeyOf(movie.Title, movie.Year)
		if prev, ok := byKey[key]; ok {
			b.logger.Debug("duplicate movie replaced",
				zap.String("title", movie.Title),
				zap.String("previous", prev.FilePath),
				zap.String("path", movie.FilePath))
		}
		byKey[key] = movie
	}

	return slices.Collect(maps.Values(byKey)), nil
}

// =============================================================================
// indexShows - Build a TvShow for every directory directly inside the TV root
// =============================================================================
// A show directory whose title does not parse, or whose tree cannot be
// walked, is skipped entirely. Duplicate (title, year) keys follow the same
// last-wins rule as movies.
// =============================================================================

func (b *Builder) indexShows(root string) ([]media.TvShow, error) {
	if root == "" {
		b.logger.Info("tv root not configured")
		return nil, nil
	}

	root = absPath(root)
	dirs, err := ListDirectories(root)
	if err != nil {
		return nil, &RootError{Kind: media.MediaKindTVShow, Path: root, Err: err}
	}

	b.logger.Info("indexing tv shows", zap.String("root", root), zap.Int("directories", len(dirs)))

	byKey := make(map[media.Key]media.TvShow)
	for _, dir := range dirs {
		title, year, err := ParseTitle(dir)
		if err != nil {
			b.logger.Warn("could not parse tv show", zap.String("path", dir), zap.Error(err))
			continue
		}

		series, err := AssembleSeries(title, dir, b.logger)
		if err != nil {
			b.logger.Warn("could not index tv show", zap.String("path", dir), zap.Error(err))
			continue
		}

		byKey[media.KeyOf(title, year)] = media.TvShow{
			Title:  title,
			Year:   year,
			Series: series,
		}
	}

	return slices.Collect(maps.Values(byKey)), nil
}

// absPath returns an absolute path, or the input unchanged when it cannot be resolved
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// DemoCatalog returns a fixed catalog used when indexing is bypassed
func DemoCatalog() *media.Catalog {
	return media.NewCatalog([]media.Movie{
		{
			Title:    "Die Hard",
			FilePath: "./fail",
		},
	}, nil)
}

