package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "photoboard", cfg.Database.Name)
	assert.Equal(t, "development", cfg.Auth.Environment)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_JWT_SECRET", "super-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.Auth.SigningSecret())
}

func TestSigningSecret_DevFallback(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	// Outside production an unset secret falls back to the dev secret.
	assert.Equal(t, "dev-secret", cfg.Auth.SigningSecret())
}
