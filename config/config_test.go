package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "estatehub", cfg.DatabaseName)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 10, cfg.MaxUploadFiles)
	assert.Equal(t, 256, cfg.ViewBufferSize)
	assert.False(t, cfg.ViewQueueEnabled)
	assert.Equal(t, "production", cfg.Env)
}

func TestUnsetEnvIsNotDevelopment(t *testing.T) {
	t.Setenv("ENV", "")
	require.NoError(t, os.Unsetenv("ENV"))
	saved := AppConfig
	t.Cleanup(func() { AppConfig = saved })

	cfg, err := Load()
	require.NoError(t, err)
	AppConfig = cfg

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, IsDevelopment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "development")
	cfg, err = Load()
	require.NoError(t, err)
	AppConfig = cfg
	assert.True(t, IsDevelopment())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", " Production ")
	t.Setenv("MAX_UPLOAD_FILES", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 3, cfg.MaxUploadFiles)
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, Config{}.AllowedOrigins())
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		Config{CORSOrigins: "https://a.example, https://b.example,"}.AllowedOrigins())
}
