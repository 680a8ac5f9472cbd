package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendscope/internal/domain/trend"
)

func TestTikTokFetchTrending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/acts/clockworks~tiktok-scraper/run-sync-get-dataset-items", r.URL.Path)
		assert.Equal(t, "secret-token", r.URL.Query().Get("token"))

		var input map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "trending", input["hashtag"])
		assert.Equal(t, float64(20), input["maxItems"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `[
			{"desc":"dance challenge","hashtags":[{"name":"dance"},{"name":"fyp"}],"likesCount":50000,"shareCount":1000,"commentCount":500},
			{"desc":"cooking hack","likesCount":200,"shareCount":10,"commentCount":5}
		]`)
	}))
	defer server.Close()

	source := NewTikTokSource(NewApifyClient("secret-token", server.URL), 0)

	records, err := source.FetchTrending(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, trend.PlatformTikTok, source.Platform())
	assert.Equal(t, "dance challenge", records[0].Topic)
	assert.Equal(t, []string{"dance", "fyp"}, records[0].Hashtags)
	require.NotNil(t, records[0].Stats)
	assert.Equal(t, trend.VideoStats{Likes: 50000, Shares: 1000, Comments: 500}, *records[0].Stats)
	assert.Equal(t, trend.MetricShortVideo, records[0].MetricKind())
}

func TestTwitterFetchTrending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/acts/quacker~twitter-scraper/run-sync-get-dataset-items", r.URL.Path)

		var input map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, []any{"trending"}, input["searchTerms"])
		assert.Equal(t, "en", input["language"])

		fmt.Fprint(w, `[
			{"full_text":"big model drop","retweet_count":600,"favorite_count":500,"created_at":"Thu Aug 28 10:00:00 +0000 2026"}
		]`)
	}))
	defer server.Close()

	source := NewTwitterSource(NewApifyClient("secret-token", server.URL), 0)

	records, err := source.FetchTrending(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, trend.PlatformTwitter, source.Platform())
	assert.Equal(t, "big model drop", records[0].Topic)
	require.NotNil(t, records[0].Engagement)
	assert.Equal(t, trend.Engagement{Retweets: 600, Likes: 500}, *records[0].Engagement)
	assert.Equal(t, "Thu Aug 28 10:00:00 +0000 2026", records[0].CreatedAt)
	assert.Equal(t, trend.MetricMicroblog, records[0].MetricKind())
}

func TestApifyMissingToken(t *testing.T) {
	source := NewTikTokSource(NewApifyClient("", "http://unused"), 5)

	_, err := source.FetchTrending(context.Background())
	assert.ErrorIs(t, err, trend.ErrSourceUnavailable)
}

func TestApifyActorFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	source := NewTwitterSource(NewApifyClient("tok", server.URL), 5)

	_, err := source.FetchTrending(context.Background())
	assert.ErrorIs(t, err, trend.ErrSourceUnavailable)
}
