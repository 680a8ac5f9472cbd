package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/internal/domain/trend"
)

func TestRegistryLookup(t *testing.T) {
	reddit := NewRedditClient(RedditConfig{})
	tiktok := NewTikTokSource(NewApifyClient("tok", ""), 0)
	registry := NewRegistry(reddit, tiktok)

	source, err := registry.Lookup("REDDIT")
	require.NoError(t, err)
	assert.Equal(t, trend.PlatformReddit, source.Platform())

	_, err = registry.Lookup("myspace")
	assert.ErrorIs(t, err, trend.ErrUnsupportedPlatform)

	// Known platform with no registered source is still unsupported.
	_, err = registry.Lookup("twitter")
	assert.ErrorIs(t, err, trend.ErrUnsupportedPlatform)
}

func TestRegistryAllIsStable(t *testing.T) {
	apify := NewApifyClient("tok", "")
	registry := NewRegistry(
		NewTwitterSource(apify, 0),
		NewRedditClient(RedditConfig{}),
		NewTikTokSource(apify, 0),
		NewGoogleTrendsClient(GoogleTrendsConfig{}),
	)

	var got []trend.Platform
	for _, source := range registry.All() {
		got = append(got, source.Platform())
	}
	assert.Equal(t, trend.Platforms(), got)
}
