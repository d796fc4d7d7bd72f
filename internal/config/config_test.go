package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CAROLUS_CONFIG", "CAROLUS_MOVIES_PATH", "CAROLUS_TV_PATH",
		"HOST", "PORT", "CAROLUS_LOG_VERBOSITY", "ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.MoviesPath)
	assert.Empty(t, cfg.TVPath)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "carolus.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
movies_path = "/srv/movies"
tv_path = "/srv/tv"
port = 9000
environment = "production"
`), 0o644))

	t.Setenv("CAROLUS_TV_PATH", "/mnt/tv")
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/movies", cfg.MoviesPath)
	assert.Equal(t, "/mnt/tv", cfg.TVPath)
	assert.Equal(t, 9000, cfg.Port, "unparsable env falls back to the file value")
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "carolus.toml")
	require.NoError(t, os.WriteFile(path, []byte(`demo = true`), 0o644))
	t.Setenv("CAROLUS_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Demo)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = Load("")
	assert.ErrorContains(t, err, "PORT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"blank movies path", func(c *Config) { c.MoviesPath = "  " }, true},
		{"relative tv path", func(c *Config) { c.TVPath = "tv" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
