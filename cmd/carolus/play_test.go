package main

import (
	"testing"

	"github.com/carolus-media/carolus/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieURL(t *testing.T) {
	tests := []struct {
		name  string
		host  string
		title string
		year  *uint16
		want  string
	}{
		{"plain", defaultHost, "Alien", nil, "http://localhost:8080/api/movies/play/Alien"},
		{"spaces escaped", defaultHost, "Die Hard", nil, "http://localhost:8080/api/movies/play/Die%20Hard"},
		{"with year", defaultHost, "Die Hard", media.Year(1988), "http://localhost:8080/api/movies/play/Die%20Hard?year=1988"},
		{"slash escaped", "http://nas:9000", "AC/DC", nil, "http://nas:9000/api/movies/play/AC%2FDC"},
		{"trailing slash host", "http://nas:9000/", "Alien", nil, "http://nas:9000/api/movies/play/Alien"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, movieURL(tt.host, tt.title, tt.year))
		})
	}
}

func TestEpisodeURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:8080/api/tv/play/The%20Office/2/4",
		episodeURL(defaultHost, "The Office", nil, 2, 4))
	assert.Equal(t,
		"http://localhost:8080/api/tv/play/Lost/1/1?year=2004",
		episodeURL(defaultHost, "Lost", media.Year(2004), 1, 1))
}

func TestParseNumber(t *testing.T) {
	n, err := parseNumber("series", "12")
	require.NoError(t, err)
	assert.Equal(t, uint16(12), n)

	_, err = parseNumber("series", "twelve")
	assert.ErrorContains(t, err, `invalid series number "twelve"`)

	_, err = parseNumber("episode", "70000")
	assert.Error(t, err)

	_, err = parseNumber("episode", "-1")
	assert.Error(t, err)
}
