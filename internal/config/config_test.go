package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "gpt-4", cfg.OpenAI.Model)
	assert.InDelta(t, 0.7, cfg.OpenAI.Temperature, 0.001)
	assert.Equal(t, 500, cfg.OpenAI.MaxTokens)
	assert.Equal(t, []string{"all", "popular", "trendingsubreddits"}, cfg.Reddit.Subreddits)
	assert.Equal(t, "now 7-d", cfg.GoogleTrends.Timeframe)
	assert.Equal(t, 20, cfg.Apify.TikTokLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("REDDIT_SUBREDDITS", "golang,programming")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, []string{"golang", "programming"}, cfg.Reddit.Subreddits)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestValidateRequiresKeyOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	_, err = Load()
	assert.NoError(t, err)
}
