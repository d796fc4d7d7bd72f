package library

import (
	"github.com/carolus-media/carolus/internal/media"

	"go.uber.org/zap"
)

// =============================================================================
// AssembleSeries - Group the episodes of one show into series
// =============================================================================
// Every media file below showRoot is run through ParseSeasonAndEpisode and
// appended to the bucket for its season. Files that do not parse are logged
// and skipped; a show with gaps is still a show.
//
// Within a series, episodes keep discovery order and are not deduplicated:
// two files that parse to the same (season, episode) both appear. Series come
// back in order of first appearance; NewCatalog sorts them by number.
//
// Returns an error only when the show directory cannot be walked.
// =============================================================================

func AssembleSeries(showTitle, showRoot string, logger *zap.Logger) ([]media.TvSeries, error) {
	files, err := GlobMediaFiles(showRoot)
	if err != nil {
		return nil, err
	}

	buckets := make(map[uint16][]media.TvEpisode)
	var order []uint16

	for _, file := range files {
		season, episode, err := ParseSeasonAndEpisode(file)
		if err != nil {
			logger.Warn("could not parse episode",
				zap.String("show", showTitle),
				zap.String("path", file),
				zap.Error(err))
			continue
		}

		logger.Debug("found tv episode",
			zap.String("show", showTitle),
			zap.Uint16("season", season),
			zap.Uint16("episode", episode),
			zap.String("path", file))

		if _, ok := buckets[season]; !ok {
			order = append(order, season)
		}
		buckets[season] = append(buckets[season], media.TvEpisode{
			EpisodeNumber: episode,
			FilePath:      file,
		})
	}

	series := make([]media.TvSeries, 0, len(order))
	for _, season := range order {
		series = append(series, media.TvSeries{
			SeriesNumber: season,
			Episodes:     buckets[season],
		})
	}

	return series, nil
}
