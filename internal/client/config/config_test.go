package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BOOKARC_API_URL", "BOOKARC_REGION", "BOOKARC_CLIENT_ID", "BOOKARC_IDENTITY_ENDPOINT",
		"BOOKARC_SESSION_DB", "BOOKARC_REQUEST_TIMEOUT", "BOOKARC_RPS", "BOOKARC_SAFE_UPLOADS", "BOOKARC_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, Config{
		APIBaseURL:     DefaultAPIBaseURL,
		Region:         "us-east-1",
		SessionDBPath:  "bookarc.db",
		RequestTimeout: 30 * time.Second,
		SafeUploads:    true,
		LogLevel:       "info",
	}, c)
}

func TestLoad_RequiresClientID(t *testing.T) {
	clearEnv(t)

	_, err := Load(nil)
	require.ErrorIs(t, err, ErrMissingClientID)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeTempJSON(t, map[string]any{
		"api_base_url":        "https://json.example/prod",
		"identity_client_id":  "json-client",
		"region":              "eu-west-1",
		"request_timeout":     "10s",
		"requests_per_second": 2.5,
		"safe_uploads":        false,
	})

	t.Run("json over defaults", func(t *testing.T) {
		cfg, err := Load([]string{"-c", path})
		require.NoError(t, err)

		want := &Config{
			APIBaseURL:        "https://json.example/prod",
			Region:            "eu-west-1",
			IdentityClientID:  "json-client",
			SessionDBPath:     "bookarc.db",
			RequestTimeout:    10 * time.Second,
			RequestsPerSecond: 2.5,
			SafeUploads:       false,
			LogLevel:          "info",
		}
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("env over json", func(t *testing.T) {
		t.Setenv("BOOKARC_REGION", "ap-south-1")
		t.Setenv("BOOKARC_REQUEST_TIMEOUT", "5s")
		t.Setenv("BOOKARC_SAFE_UPLOADS", "true")

		cfg, err := Load([]string{"-config", path})
		require.NoError(t, err)
		assert.Equal(t, "ap-south-1", cfg.Region)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.True(t, cfg.SafeUploads)
		assert.Equal(t, "json-client", cfg.IdentityClientID)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("BOOKARC_REGION", "ap-south-1")

		cfg, err := Load([]string{"-config", path, "-r", "us-west-2", "-db=/tmp/s.db", "-l", "debug", "-unknown", "x"})
		require.NoError(t, err)
		assert.Equal(t, "us-west-2", cfg.Region)
		assert.Equal(t, "/tmp/s.db", cfg.SessionDBPath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

	_, err := Load([]string{"-c", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")

	_, err = Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv("BOOKARC_RPS", "fast")
	_, err = Load([]string{"-id", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config env")
}

func TestParseJSON_AbsentKeysKeepValues(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"log_level": "warn"})
	cfg := &Config{}
	cfg.LoadDefaults()

	require.NoError(t, parseJSON(cfg, []string{"-c", path}))
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.True(t, cfg.SafeUploads)
}
