// internal/service/social/tiktok.go

package social

import (
	"context"

	"trendscope/internal/domain/trend"
)

const tiktokActorID = "clockworks~tiktok-scraper"

// TikTokSource fetches trending short videos through the Apify TikTok
// scraper actor.
type TikTokSource struct {
	apify    *ApifyClient
	maxItems int
}

// NewTikTokSource creates a TikTok source over the given Apify client.
func NewTikTokSource(apify *ApifyClient, maxItems int) *TikTokSource {
	if maxItems <= 0 {
		maxItems = 20
	}
	return &TikTokSource{apify: apify, maxItems: maxItems}
}

// Platform returns the platform this source scrapes.
func (s *TikTokSource) Platform() trend.Platform {
	return trend.PlatformTikTok
}

type tiktokItem struct {
	Desc     string `json:"desc"`
	Hashtags []struct {
		Name string `json:"name"`
	} `json:"hashtags"`
	LikesCount   int `json:"likesCount"`
	ShareCount   int `json:"shareCount"`
	CommentCount int `json:"commentCount"`
}

// FetchTrending scrapes videos under the trending hashtag and maps them to
// short-video records.
func (s *TikTokSource) FetchTrending(ctx context.Context) ([]trend.Record, error) {
	input := map[string]any{
		"hashtag":  "trending",
		"maxItems": s.maxItems,
	}

	var items []tiktokItem
	if err := s.apify.RunActor(ctx, tiktokActorID, input, &items); err != nil {
		return nil, err
	}

	records := make([]trend.Record, 0, len(items))
	for _, item := range items {
		var hashtags []string
		for _, tag := range item.Hashtags {
			hashtags = append(hashtags, tag.Name)
		}

		records = append(records, trend.Record{
			Topic:    item.Desc,
			Hashtags: hashtags,
			Stats: &trend.VideoStats{
				Likes:    item.LikesCount,
				Shares:   item.ShareCount,
				Comments: item.CommentCount,
			},
		})
	}
	return records, nil
}
