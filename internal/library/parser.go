package library

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/carolus-media/carolus/internal/media"
)

// =============================================================================
// Filename Patterns
// =============================================================================

var (
	// Trailing year in parentheses or brackets
	// Examples: "Alien (1979)", "Heat [1995]", "The.Thing.(1982)"
	movieYearPattern = regexp.MustCompile(`^(.*?)[\s._-]*(?:\((\d{4})\)|\[(\d{4})\])[\s._-]*$`)

	// Canonical marker, case-insensitive: "S01E02", "s10e103"
	seasonEpisodePattern = regexp.MustCompile(`(?i)s(\d{2,})e(\d{2,})`)

	// Split markers: "Season 1/Episode 2.mp4", "Show - Season.2 - Episode_05.mp4"
	seasonPattern  = regexp.MustCompile(`(?i)season[\s._-]*(\d+)`)
	episodePattern = regexp.MustCompile(`(?i)episode[\s._-]*(\d+)`)

	separatorReplacer = strings.NewReplacer(".", " ", "_", " ")
)

// =============================================================================
// ParseMovie - Extract a movie title and optional year from a file path
// =============================================================================
// Parsing strategy:
//   1. Strip the extension from the base name
//   2. Split off a trailing "(YYYY)" or "[YYYY]" token as the year
//   3. Replace dots and underscores with spaces, collapse whitespace, trim
//
// Examples:
//   "Alien (1979).mp4"          -> "Alien" (1979)
//   "The_Big.Lebowski.m4v"      -> "The Big Lebowski" (no year)
// =============================================================================

func ParseMovie(path string) (media.Movie, error) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	title, year, err := parseTitleAndYear(name)
	if err != nil {
		return media.Movie{}, err
	}

	return media.Movie{
		Title:    title,
		Year:     year,
		FilePath: path,
	}, nil
}

// ParseTitle extracts a show title and optional year from its top-level
// directory. Directory names keep their dots, so "Mr. Robot (2015)" is not
// mistaken for a name with an extension.
func ParseTitle(dir string) (string, *uint16, error) {
	return parseTitleAndYear(filepath.Base(dir))
}

func parseTitleAndYear(name string) (string, *uint16, error) {
	var year *uint16

	if matches := movieYearPattern.FindStringSubmatch(name); len(matches) == 4 {
		digits := matches[2] + matches[3]
		y, err := strconv.ParseUint(digits, 10, 16)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q in %q", ErrInvalidYear, digits, name)
		}
		year = media.Year(uint16(y))
		name = matches[1]
	}

	title := normalizeTitle(name)
	if title == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrEmptyTitle, name)
	}

	return title, year, nil
}

// normalizeTitle converts dots/underscores to spaces, collapses runs of
// whitespace and trims the result
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(separatorReplacer.Replace(title)), " ")
}

// =============================================================================
// ParseSeasonAndEpisode - Extract season and episode numbers from a file path
// =============================================================================
// Parsing strategy:
//   1. Look for SxxEyy in the file name, then in the parent directory name
//   2. Otherwise look for "Season n" and "Episode n" separately, each in the
//      file name first and the parent directory second
//
// A marker whose numbers do not fit in a uint16 is passed over and the next
// candidate is tried.
//
// Examples:
//   "Show.S02E05.mp4"               -> 2, 5
//   "Show/S03E01/video.mp4"         -> 3, 1
//   "Show/Season 4/Episode 7.webm"  -> 4, 7
// =============================================================================

func ParseSeasonAndEpisode(path string) (season, episode uint16, err error) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	parent := filepath.Base(filepath.Dir(path))

	var lastErr error
	for _, candidate := range []string{name, parent} {
		if matches := seasonEpisodePattern.FindStringSubmatch(candidate); len(matches) == 3 {
			season, episode, err = parseSeasonEpisodeNumbers(path, matches[1], matches[2])
			if err == nil {
				return season, episode, nil
			}
			lastErr = err
		}
	}

	seasonDigits := firstSubmatch(seasonPattern, name, parent)
	episodeDigits := firstSubmatch(episodePattern, name, parent)
	if seasonDigits != "" && episodeDigits != "" {
		return parseSeasonEpisodeNumbers(path, seasonDigits, episodeDigits)
	}

	if lastErr != nil {
		return 0, 0, lastErr
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrNoSeasonEpisode, base)
}

func parseSeasonEpisodeNumbers(path, seasonDigits, episodeDigits string) (uint16, uint16, error) {
	season, err := strconv.ParseUint(seasonDigits, 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: season %s out of range in %q", ErrNoSeasonEpisode, seasonDigits, path)
	}
	episode, err := strconv.ParseUint(episodeDigits, 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: episode %s out of range in %q", ErrNoSeasonEpisode, episodeDigits, path)
	}
	return uint16(season), uint16(episode), nil
}

// firstSubmatch returns the first capture group of pattern in the first input that matches
func firstSubmatch(pattern *regexp.Regexp, inputs ...string) string {
	for _, input := range inputs {
		if matches := pattern.FindStringSubmatch(input); len(matches) > 1 {
			return matches[1]
		}
	}
	return ""
}
