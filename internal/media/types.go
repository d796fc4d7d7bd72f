package media

import (
	"cmp"
	"strconv"
)

// MediaKind represents the type of a catalog entry
type MediaKind string

const (
	MediaKindMovie     MediaKind = "movie"
	MediaKindTVShow    MediaKind = "tv_show"
	MediaKindTVSeries  MediaKind = "tv_series"
	MediaKindTVEpisode MediaKind = "tv_episode"
)

// Movie is a single playable movie file
type Movie struct {
	Title    string  `json:"title"`
	Year     *uint16 `json:"year,omitempty"`
	FilePath string  `json:"file_path"`
}

// TvShow is a show directory with its series
type TvShow struct {
	Title  string     `json:"title"`
	Year   *uint16    `json:"year,omitempty"`
	Series []TvSeries `json:"series"`
}

// TvSeries is one season of a show
type TvSeries struct {
	SeriesNumber uint16      `json:"series_number"`
	Episodes     []TvEpisode `json:"episodes"`
}

// TvEpisode is a single playable episode file
type TvEpisode struct {
	EpisodeNumber uint16 `json:"episode_number"`
	FilePath      string `json:"file_path"`
}

// Year returns a pointer suitable for the optional year fields
func Year(y uint16) *uint16 {
	return &y
}

// FormatYear renders an optional year for logs and listings
func FormatYear(y *uint16) string {
	if y == nil {
		return "-"
	}
	return strconv.FormatUint(uint64(*y), 10)
}

// SameYear reports whether two optional years are equal. A nil year only
// equals another nil year.
func SameYear(a, b *uint16) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// CompareKey orders entries by (title, year). Titles compare byte-wise and a
// missing year sorts before any concrete year.
func CompareKey(aTitle string, aYear *uint16, bTitle string, bYear *uint16) int {
	if c := cmp.Compare(aTitle, bTitle); c != 0 {
		return c
	}
	switch {
	case aYear == nil && bYear == nil:
		return 0
	case aYear == nil:
		return -1
	case bYear == nil:
		return 1
	}
	return cmp.Compare(*aYear, *bYear)
}

// Key identifies a movie or show inside the catalog
type Key struct {
	Title string
	Year  uint16
	// HasYear distinguishes "no year" from year zero
	HasYear bool
}

// KeyOf builds a comparable map key from a title and optional year
func KeyOf(title string, year *uint16) Key {
	if year == nil {
		return Key{Title: title}
	}
	return Key{Title: title, Year: *year, HasYear: true}
}
