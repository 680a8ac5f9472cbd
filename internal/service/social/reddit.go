// internal/service/social/reddit.go

package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"trendscope/internal/domain/trend"
)

// RedditConfig holds Reddit scraper settings.
type RedditConfig struct {
	BaseURL    string
	UserAgent  string
	Subreddits []string
	PostLimit  int
}

// RedditClient fetches hot posts from the public Reddit JSON API.
type RedditClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	subreddits []string
	postLimit  int
}

// NewRedditClient creates a Reddit source with defaults for any unset
// settings.
func NewRedditClient(cfg RedditConfig) *RedditClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.reddit.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "trendscope/1.0"
	}
	if len(cfg.Subreddits) == 0 {
		cfg.Subreddits = []string{"all", "popular"}
	}
	if cfg.PostLimit <= 0 {
		cfg.PostLimit = 10
	}

	return &RedditClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		subreddits: cfg.Subreddits,
		postLimit:  cfg.PostLimit,
	}
}

// Platform returns the platform this source scrapes.
func (c *RedditClient) Platform() trend.Platform {
	return trend.PlatformReddit
}

type redditPost struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
	Subreddit   string `json:"subreddit"`
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchTrending returns the hot posts of every configured subreddit as
// link-aggregator records.
func (c *RedditClient) FetchTrending(ctx context.Context) ([]trend.Record, error) {
	var records []trend.Record
	for _, subreddit := range c.subreddits {
		posts, err := c.hotPosts(ctx, subreddit)
		if err != nil {
			return nil, err
		}

		for _, post := range posts {
			mentions := post.Score
			comments := post.NumComments
			records = append(records, trend.Record{
				Topic:     post.Title,
				Mentions:  &mentions,
				Comments:  &comments,
				URL:       post.URL,
				Subreddit: subreddit,
			})
		}
	}
	return records, nil
}

func (c *RedditClient) hotPosts(ctx context.Context, subreddit string) ([]redditPost, error) {
	url := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", c.baseURL, subreddit, c.postLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create reddit request: %v", trend.ErrSourceUnavailable, err)
	}

	// Reddit throttles requests without an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: reddit request failed: %v", trend.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: reddit api returned status %d", trend.ErrSourceUnavailable, resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("%w: decode reddit response: %v", trend.ErrSourceUnavailable, err)
	}

	posts := make([]redditPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, child.Data)
	}
	return posts, nil
}
