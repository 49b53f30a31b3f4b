package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempJSON writes content to a temp file and returns its path.
func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestParseJSON_FullConfig verifies that all groups are populated from a
// JSON configuration file, including string durations.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"server": {"http_address": "localhost:8000", "request_timeout": "30s", "shutdown_timeout": "5s"},
		"store": {"supabase_url": "https://demo.supabase.co", "supabase_key": "key", "request_timeout": "15s"},
		"auth": {"token_sign_key": "secret", "token_issuer": "shop", "token_duration": "1h"},
		"cors": {"allowed_origins": ["http://localhost:3000"]},
		"log_level": "warn"
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://demo.supabase.co", cfg.Store.SupabaseURL)
	assert.Equal(t, "key", cfg.Store.SupabaseKey)
	assert.Equal(t, 15*time.Second, cfg.Store.RequestTimeout)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "warn", cfg.LogLevel)
}

// TestParseJSON_NumericDuration verifies that numeric durations
// (nanoseconds) are accepted alongside string durations.
func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

// TestParseJSON_MissingFile verifies the error path for a non-existent file.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "no-such-file.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestParseJSON_MalformedJSON verifies the error path for unparseable JSON.
func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"server": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
