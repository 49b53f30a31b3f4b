package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWithoutFlags assembles a config from env + defaults only, bypassing
// ParseFlags (the global flag set cannot be parsed repeatedly in tests).
func buildWithoutFlags(t *testing.T) (*StructuredConfig, error) {
	t.Helper()
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

// TestBuild_EnvOverridesDefaults verifies that environment values win over
// the built-in defaults during the merge.
func TestBuild_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_KEY", "key")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")

	cfg, err := buildWithoutFlags(t)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	// untouched fields come from defaults
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Len(t, cfg.CORS.AllowedOrigins, 4)
}

// TestBuild_MissingStoreCredentials verifies that validation fails when the
// store URL or key is absent from every source.
func TestBuild_MissingStoreCredentials(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")

	_, err := buildWithoutFlags(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStoreConfigs)
}

// TestBuild_MissingTokenSignKey verifies that validation fails when no JWT
// sign key is configured.
func TestBuild_MissingTokenSignKey(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_KEY", "key")

	_, err := buildWithoutFlags(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}
