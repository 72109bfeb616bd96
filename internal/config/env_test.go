package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/thingful_test")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/thingful_test", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestParseEnv_EmptyEnvLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.TokenDuration)
}
