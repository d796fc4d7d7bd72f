package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/carolus-media/carolus/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCatalog() *media.Catalog {
	return media.NewCatalog(
		[]media.Movie{
			{Title: "Die Hard", Year: media.Year(1988), FilePath: "/movies/Die Hard (1988).mp4"},
			{Title: "Alien", FilePath: "/movies/Alien.webm"},
		},
		[]media.TvShow{
			{Title: "Lost", Year: media.Year(2004), Series: []media.TvSeries{
				{SeriesNumber: 1, Episodes: []media.TvEpisode{
					{EpisodeNumber: 1, FilePath: "/tv/Lost (2004)/Lost.S01E01.mp4"},
					{EpisodeNumber: 2, FilePath: "/tv/Lost (2004)/Lost.S01E02.mp4"},
				}},
			}},
		},
	)
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, testCatalog()))

	want := `Movies (2)
  Alien (-)  /movies/Alien.webm
  Die Hard (1988)  /movies/Die Hard (1988).mp4

TV (1)
  Lost (2004)
    Series 1
      E01  /tv/Lost (2004)/Lost.S01E01.mp4
      E02  /tv/Lost (2004)/Lost.S01E02.mp4
`
	assert.Equal(t, want, buf.String())
}

func TestWriteCatalogJSON(t *testing.T) {
	catalog := testCatalog()

	var buf bytes.Buffer
	require.NoError(t, writeCatalogJSON(&buf, catalog))

	var got catalogJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, catalog.Fingerprint(), got.Fingerprint)
	assert.Equal(t, catalog.Movies(), got.Movies)
	assert.Equal(t, catalog.Shows(), got.Shows)
}

func TestWriteCatalogJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalogJSON(&buf, media.NewCatalog(nil, nil)))
	assert.Contains(t, buf.String(), `"movies": []`)
	assert.Contains(t, buf.String(), `"shows": []`)
}

func TestIndexCommand_Demo(t *testing.T) {
	t.Setenv("CAROLUS_CONFIG", "")
	t.Setenv("ENVIRONMENT", "production")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"index", "--demo", "--json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var got catalogJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Movies, 1)
	assert.Equal(t, "Die Hard", got.Movies[0].Title)
	assert.Nil(t, got.Movies[0].Year)
	assert.Empty(t, got.Shows)
}

func TestServe_StopsOnCancel(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, serve(ctx, server, zap.NewNop()))
}
