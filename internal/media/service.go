package media

// Resolver is the read-only query API consumed by the serving layer.
// Every Find method prefers an exact (title, year) match and falls back to the
// first entry whose title matches case-insensitively, regardless of year.
type Resolver interface {
	ListMovies() []Movie
	FindMovie(title string, year *uint16) (Movie, error)
	ListShows() []TvShow
	FindShow(title string, year *uint16) (TvShow, error)
	FindSeries(title string, year *uint16, series uint16) (SeriesMatch, error)
	FindEpisode(title string, year *uint16, series, episode uint16) (EpisodeMatch, error)

	// Fingerprint changes whenever the catalog contents change
	Fingerprint() string
}

// SeriesMatch is a resolved series together with its owning show
type SeriesMatch struct {
	Show   TvShow   `json:"show"`
	Series TvSeries `json:"series"`
}

// EpisodeMatch is a resolved episode together with its owning show and series
type EpisodeMatch struct {
	Show    TvShow    `json:"show"`
	Series  TvSeries  `json:"series"`
	Episode TvEpisode `json:"episode"`
}

var _ Resolver = (*Catalog)(nil)

// ListMovies returns every movie in catalog order
func (c *Catalog) ListMovies() []Movie {
	return c.Movies()
}

// ListShows returns every show in catalog order
func (c *Catalog) ListShows() []TvShow {
	return c.Shows()
}

// FindMovie resolves a movie by title and optional year
func (c *Catalog) FindMovie(title string, year *uint16) (Movie, error) {
	i := match(c.movieTitles, title, year, func(i int) *uint16 { return c.movies[i].Year })
	if i < 0 {
		return Movie{}, &NotFoundError{Kind: MediaKindMovie, Title: title, Year: year}
	}
	return c.movies[i], nil
}

// FindShow resolves a show by title and optional year
func (c *Catalog) FindShow(title string, year *uint16) (TvShow, error) {
	i := c.findShowIndex(title, year)
	if i < 0 {
		return TvShow{}, &NotFoundError{Kind: MediaKindTVShow, Title: title, Year: year}
	}
	return c.shows[i], nil
}

// FindSeries resolves a show, then the series with the exact series number.
// There is no fallback to a neighbouring series.
func (c *Catalog) FindSeries(title string, year *uint16, series uint16) (SeriesMatch, error) {
	show, err := c.FindShow(title, year)
	if err != nil {
		return SeriesMatch{}, err
	}

	for _, s := range show.Series {
		if s.SeriesNumber == series {
			return SeriesMatch{Show: show, Series: s}, nil
		}
	}

	return SeriesMatch{}, &NotFoundError{Kind: MediaKindTVSeries, Title: title, Year: year, Series: series}
}

// FindEpisode resolves a show and series, then the first episode with the
// exact episode number.
func (c *Catalog) FindEpisode(title string, year *uint16, series, episode uint16) (EpisodeMatch, error) {
	sm, err := c.FindSeries(title, year, series)
	if err != nil {
		return EpisodeMatch{}, err
	}

	for _, ep := range sm.Series.Episodes {
		if ep.EpisodeNumber == episode {
			return EpisodeMatch{Show: sm.Show, Series: sm.Series, Episode: ep}, nil
		}
	}

	return EpisodeMatch{}, &NotFoundError{Kind: MediaKindTVEpisode, Title: title, Year: year, Series: series, Episode: episode}
}

func (c *Catalog) findShowIndex(title string, year *uint16) int {
	return match(c.showTitles, title, year, func(i int) *uint16 { return c.shows[i].Year })
}

// match implements the two-step lookup over folded titles: exact (title, year)
// when a year is given, then the first title-only match. Returns -1 on a miss.
func match(folded []string, title string, year *uint16, yearAt func(int) *uint16) int {
	want := foldTitle(title)

	if year != nil {
		for i, t := range folded {
			if t == want && SameYear(yearAt(i), year) {
				return i
			}
		}
	}

	for i, t := range folded {
		if t == want {
			return i
		}
	}

	return -1
}
