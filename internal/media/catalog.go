package media

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"slices"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/cases"
)

// =============================================================================
// Catalog - Immutable in-memory index of movies and TV shows
// =============================================================================
// A Catalog is built once (see library.Builder) and then shared read-only by
// every request handler for the lifetime of the process. No method mutates it,
// so concurrent readers need no locking.
//
// Ordering:
//   - movies by (title, year)
//   - shows by (title, year), each show's series by series number
//   - episodes stay in discovery order
// =============================================================================

type Catalog struct {
	movies []Movie
	shows  []TvShow

	// case-folded titles, index-aligned with movies and shows
	movieTitles []string
	showTitles  []string

	fingerprint string
}

// NewCatalog takes ownership of movies and shows and sorts them into catalog order.
// Callers must not modify the slices afterwards.
func NewCatalog(movies []Movie, shows []TvShow) *Catalog {
	slices.SortStableFunc(movies, func(a, b Movie) int {
		return CompareKey(a.Title, a.Year, b.Title, b.Year)
	})
	slices.SortStableFunc(shows, func(a, b TvShow) int {
		return CompareKey(a.Title, a.Year, b.Title, b.Year)
	})
	for i := range shows {
		slices.SortStableFunc(shows[i].Series, func(a, b TvSeries) int {
			return int(a.SeriesNumber) - int(b.SeriesNumber)
		})
	}

	c := &Catalog{
		movies:      movies,
		shows:       shows,
		movieTitles: make([]string, len(movies)),
		showTitles:  make([]string, len(shows)),
	}
	for i, m := range movies {
		c.movieTitles[i] = foldTitle(m.Title)
	}
	for i, s := range shows {
		c.showTitles[i] = foldTitle(s.Title)
	}
	c.fingerprint = computeFingerprint(movies, shows)

	return c
}

// Movies returns all movies in catalog order. The returned slice must be treated as read-only.
func (c *Catalog) Movies() []Movie {
	return c.movies
}

// Shows returns all shows in catalog order. The returned slice must be treated as read-only.
func (c *Catalog) Shows() []TvShow {
	return c.shows
}

// Fingerprint is a stable digest of the catalog contents, suitable as an ETag
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// foldTitle applies full Unicode case folding. A Caser is stateful, so one is
// created per call instead of being shared between goroutines.
func foldTitle(title string) string {
	return cases.Fold().String(title)
}

func computeFingerprint(movies []Movie, shows []TvShow) string {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes

	writeString(h, "movies")
	for _, m := range movies {
		writeString(h, m.Title)
		writeYear(h, m.Year)
		writeString(h, m.FilePath)
	}

	writeString(h, "shows")
	for _, s := range shows {
		writeString(h, s.Title)
		writeYear(h, s.Year)
		for _, series := range s.Series {
			writeUint16(h, series.SeriesNumber)
			for _, ep := range series.Episodes {
				writeUint16(h, ep.EpisodeNumber)
				writeString(h, ep.FilePath)
			}
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// writeString length-prefixes s so adjacent fields cannot run together
func writeString(h hash.Hash, s string) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}

func writeUint16(h hash.Hash, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	h.Write(b[:])
}

func writeYear(h hash.Hash, y *uint16) {
	if y == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	writeUint16(h, *y)
}
