package library

import (
	"errors"
	"fmt"

	"github.com/carolus-media/carolus/internal/media"
)

// Parse failures. They are per item: the builder logs them and skips the file
// or show directory without aborting the build.
var (
	// ErrEmptyTitle is returned when nothing is left of a name after normalization
	ErrEmptyTitle = errors.New("empty title")

	// ErrInvalidYear is returned when a year-shaped token is not a valid year
	ErrInvalidYear = errors.New("invalid year")

	// ErrNoSeasonEpisode is returned when no season/episode marker is found
	ErrNoSeasonEpisode = errors.New("no season and episode marker")
)

// RootError reports that a configured root directory could not be enumerated.
// It is fatal to the build.
type RootError struct {
	Kind media.MediaKind
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("failed to index %s root %s: %v", e.Kind, e.Path, e.Err)
}

func (e *RootError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is a recoverable per-item parse failure
func IsParseError(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidYear) ||
		errors.Is(err, ErrNoSeasonEpisode)
}
