package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/echosheet/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.HTTPTimeout)
	assert.Empty(t, cfg.Redis.Addr)
	assert.True(t, cfg.Compendium.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Compendium.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.Drafts.TTL)
	assert.Equal(t, time.Second, cfg.Drafts.AutosaveDelay)
	assert.Equal(t, "default", cfg.Drafts.Session)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ECHOSHEET_BASE_URL", "https://echosheet.example.com")
	t.Setenv("ECHOSHEET_HTTP_TIMEOUT", "5s")
	t.Setenv("ECHOSHEET_REDIS_ADDR", "localhost:6379")
	t.Setenv("ECHOSHEET_REDIS_DB", "2")
	t.Setenv("ECHOSHEET_DRAFT_TTL", "2h")
	t.Setenv("ECHOSHEET_AUTOSAVE_DELAY", "250ms")
	t.Setenv("ECHOSHEET_COMPENDIUM_ENABLED", "false")
	t.Setenv("ECHOSHEET_SESSION", "table-7")
	t.Setenv("ECHOSHEET_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://echosheet.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.HTTPTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 2*time.Hour, cfg.Drafts.TTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Drafts.AutosaveDelay)
	assert.False(t, cfg.Compendium.Enabled)
	assert.Equal(t, "table-7", cfg.Drafts.Session)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "relative url", key: "ECHOSHEET_BASE_URL", value: "localhost:5000"},
		{name: "unparsable timeout", key: "ECHOSHEET_HTTP_TIMEOUT", value: "soon"},
		{name: "zero ttl", key: "ECHOSHEET_DRAFT_TTL", value: "0s"},
		{name: "blank session", key: "ECHOSHEET_SESSION", value: "  "},
		{name: "unknown log level", key: "ECHOSHEET_LOG_LEVEL", value: "loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := config.ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, l)
}
