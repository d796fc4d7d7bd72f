package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carolus-media/carolus/internal/http/handlers"
	"github.com/carolus-media/carolus/internal/media"
	"github.com/spf13/cobra"
)

const defaultHost = "http://localhost:8080"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Print the playback URL for a catalog entry",
	Long: `Print the URL a running carolus server plays an entry from.

Examples:
  carolus play movie "Die Hard" --year 1988
  carolus play tv "The Office" 2 4 --host http://nas:8080`,
}

var playMovieCmd = &cobra.Command{
	Use:   "movie <title>",
	Short: "Print the playback URL for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayMovie,
}

var playTVCmd = &cobra.Command{
	Use:   "tv <title> <series> <episode>",
	Short: "Print the playback URL for a TV episode",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlayTV,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.AddCommand(playMovieCmd, playTVCmd)

	playCmd.PersistentFlags().String("host", defaultHost, "Base URL of the carolus server")
	playCmd.PersistentFlags().Uint16("year", 0, "Release year to disambiguate the title")
}

func runPlayMovie(cmd *cobra.Command, args []string) error {
	host, year := playFlags(cmd)
	fmt.Fprintln(cmd.OutOrStdout(), movieURL(host, args[0], year))
	return nil
}

func runPlayTV(cmd *cobra.Command, args []string) error {
	series, err := parseNumber("series", args[1])
	if err != nil {
		return err
	}
	episode, err := parseNumber("episode", args[2])
	if err != nil {
		return err
	}

	host, year := playFlags(cmd)
	fmt.Fprintln(cmd.OutOrStdout(), episodeURL(host, args[0], year, series, episode))
	return nil
}

func playFlags(cmd *cobra.Command) (string, *uint16) {
	host, _ := cmd.Flags().GetString("host")

	var year *uint16
	if cmd.Flags().Changed("year") {
		y, _ := cmd.Flags().GetUint16("year")
		year = media.Year(y)
	}

	return host, year
}

func parseNumber(name, s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number %q", name, s)
	}
	return uint16(n), nil
}

func movieURL(host, title string, year *uint16) string {
	return handlers.TitleURL(strings.TrimSuffix(host, "/")+"/api/movies/play", title, year)
}

func episodeURL(host, title string, year *uint16, series, episode uint16) string {
	return handlers.EpisodeURL(strings.TrimSuffix(host, "/")+"/api/tv/play", title, year, series, episode)
}
