// internal/service/social/twitter.go

package social

import (
	"context"

	"trendscope/internal/domain/trend"
)

const twitterActorID = "quacker~twitter-scraper"

// TwitterSource fetches trending tweets through the Apify Twitter scraper
// actor.
type TwitterSource struct {
	apify     *ApifyClient
	maxTweets int
}

// NewTwitterSource creates a Twitter source over the given Apify client.
func NewTwitterSource(apify *ApifyClient, maxTweets int) *TwitterSource {
	if maxTweets <= 0 {
		maxTweets = 100
	}
	return &TwitterSource{apify: apify, maxTweets: maxTweets}
}

// Platform returns the platform this source scrapes.
func (s *TwitterSource) Platform() trend.Platform {
	return trend.PlatformTwitter
}

type tweetItem struct {
	FullText      string `json:"full_text"`
	RetweetCount  int    `json:"retweet_count"`
	FavoriteCount int    `json:"favorite_count"`
	CreatedAt     string `json:"created_at"`
}

// FetchTrending searches for trending tweets and maps them to microblog
// records.
func (s *TwitterSource) FetchTrending(ctx context.Context) ([]trend.Record, error) {
	input := map[string]any{
		"searchTerms": []string{"trending"},
		"maxTweets":   s.maxTweets,
		"language":    "en",
	}

	var items []tweetItem
	if err := s.apify.RunActor(ctx, twitterActorID, input, &items); err != nil {
		return nil, err
	}

	records := make([]trend.Record, 0, len(items))
	for _, item := range items {
		records = append(records, trend.Record{
			Topic: item.FullText,
			Engagement: &trend.Engagement{
				Retweets: item.RetweetCount,
				Likes:    item.FavoriteCount,
			},
			CreatedAt: item.CreatedAt,
		})
	}
	return records, nil
}
