package media

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup does not match any catalog entry
	ErrNotFound = errors.New("not found")
)

// NotFoundError describes a lookup miss. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Kind    MediaKind
	Title   string
	Year    *uint16
	Series  uint16
	Episode uint16
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case MediaKindTVSeries:
		return fmt.Sprintf("series %d of '%s' was not found", e.Series, e.Title)
	case MediaKindTVEpisode:
		return fmt.Sprintf("episode S%02dE%02d of '%s' was not found", e.Series, e.Episode, e.Title)
	default:
		return fmt.Sprintf("'%s' was not found", e.Title)
	}
}

// Is lets errors.Is(err, ErrNotFound) succeed for every NotFoundError
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is a lookup miss
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
