package main

import (
	"fmt"
	"os"

	"github.com/carolus-media/carolus/internal/config"
	"github.com/carolus-media/carolus/internal/library"
	"github.com/carolus-media/carolus/internal/logging"
	"github.com/carolus-media/carolus/internal/media"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	configPath string
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "carolus",
	Short: "Personal media catalog server",
	Long: `carolus - personal media catalog server

Indexes a directory of movie files and a directory of TV show
folders, then serves the catalog over HTTP for browsing and playback.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config file (default $CAROLUS_CONFIG)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("carolus {{.Version}}\n")
}

// addLibraryFlags registers the flags shared by every command that builds a
// catalog
func addLibraryFlags(cmd *cobra.Command) {
	cmd.Flags().String("movies", "", "Movie library root")
	cmd.Flags().String("tv", "", "TV library root")
	cmd.Flags().Bool("demo", false, "Use the built-in demo catalog instead of indexing")
}

// loadConfig resolves the configuration for cmd. Flags given on the command
// line override the config file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("movies") {
		cfg.MoviesPath, _ = flags.GetString("movies")
	}
	if flags.Changed("tv") {
		cfg.TVPath, _ = flags.GetString("tv")
	}
	if flags.Changed("demo") {
		cfg.Demo, _ = flags.GetBool("demo")
	}
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("verbose") {
		cfg.Verbosity = verbosity
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// buildCatalog indexes the configured roots, or returns the demo catalog
func buildCatalog(cfg *config.Config, logger *zap.Logger) (*media.Catalog, error) {
	if cfg.Demo {
		logger.Info("using demo catalog")
		return library.DemoCatalog(), nil
	}

	logger.Info("indexing library",
		zap.String("movies_path", cfg.MoviesPath),
		zap.String("tv_path", cfg.TVPath),
	)

	return library.NewBuilder(logger).Build(cfg.MoviesPath, cfg.TVPath)
}

// newLogger builds the process logger for cfg
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.NewLogger(cfg.IsDevelopment(), cfg.Verbosity)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
