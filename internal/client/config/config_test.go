package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, 2*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 30*time.Second, cfg.DrainInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
server_url = "https://ops.example.com"
db_path = "/var/lib/fieldsync/client.db"
probe_interval = "10s"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://ops.example.com", cfg.ServerURL)
	assert.Equal(t, "/var/lib/fieldsync/client.db", cfg.DBPath)
	assert.Equal(t, 10*time.Second, cfg.ProbeInterval)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Не заданные в файле значения остаются дефолтными
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 30*time.Second, cfg.DrainInterval)
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`probe_timeout = "fast"`), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe_timeout")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`server_url = [unclosed`), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty server url",
			mutate:  func(c *Config) { c.ServerURL = "" },
			wantErr: "server_url",
		},
		{
			name:    "empty db path",
			mutate:  func(c *Config) { c.DBPath = "" },
			wantErr: "db_path",
		},
		{
			name:    "non-positive probe interval",
			mutate:  func(c *Config) { c.ProbeInterval = 0 },
			wantErr: "probe_interval",
		},
		{
			name:    "negative drain interval",
			mutate:  func(c *Config) { c.DrainInterval = -time.Second },
			wantErr: "drain_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
