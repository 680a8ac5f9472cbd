// internal/service/social/googletrends.go

package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"trendscope/internal/domain/trend"
)

// GoogleTrendsConfig holds Google Trends scraper settings.
type GoogleTrendsConfig struct {
	BaseURL    string
	Geo        string
	Timeframe  string
	Language   string
	TopicLimit int
}

// GoogleTrendsClient fetches daily trending searches and their
// interest-over-time series from the unofficial Google Trends JSON API.
// Responses carry an anti-hijacking prefix before the JSON body.
type GoogleTrendsClient struct {
	httpClient *http.Client
	baseURL    string
	geo        string
	timeframe  string
	language   string
	topicLimit int
}

// NewGoogleTrendsClient creates a Google Trends source with defaults for any
// unset settings.
func NewGoogleTrendsClient(cfg GoogleTrendsConfig) *GoogleTrendsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://trends.google.com"
	}
	if cfg.Geo == "" {
		cfg.Geo = "US"
	}
	if cfg.Timeframe == "" {
		cfg.Timeframe = "now 7-d"
	}
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	if cfg.TopicLimit <= 0 {
		cfg.TopicLimit = 10
	}

	return &GoogleTrendsClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.BaseURL,
		geo:        cfg.Geo,
		timeframe:  cfg.Timeframe,
		language:   cfg.Language,
		topicLimit: cfg.TopicLimit,
	}
}

// Platform returns the platform this source scrapes.
func (c *GoogleTrendsClient) Platform() trend.Platform {
	return trend.PlatformGoogle
}

type dailyTrendsResponse struct {
	Default struct {
		TrendingSearchesDays []struct {
			TrendingSearches []struct {
				Title struct {
					Query string `json:"query"`
				} `json:"title"`
			} `json:"trendingSearches"`
		} `json:"trendingSearchesDays"`
	} `json:"default"`
}

type exploreResponse struct {
	Widgets []struct {
		ID      string          `json:"id"`
		Token   string          `json:"token"`
		Request json.RawMessage `json:"request"`
	} `json:"widgets"`
}

type multilineResponse struct {
	Default struct {
		TimelineData []struct {
			Value []float64 `json:"value"`
		} `json:"timelineData"`
	} `json:"default"`
}

// FetchTrending lists today's trending searches, then fetches the
// interest-over-time series for each topic and averages it into a 0-100
// interest record. Topics whose series comes back empty are skipped.
func (c *GoogleTrendsClient) FetchTrending(ctx context.Context) ([]trend.Record, error) {
	topics, err := c.dailyTrends(ctx)
	if err != nil {
		return nil, err
	}
	if len(topics) > c.topicLimit {
		topics = topics[:c.topicLimit]
	}

	var records []trend.Record
	for _, topic := range topics {
		series, err := c.interestOverTime(ctx, topic)
		if err != nil {
			return nil, err
		}
		if len(series) == 0 {
			continue
		}

		var sum float64
		for _, v := range series {
			sum += v
		}
		avg := sum / float64(len(series))

		records = append(records, trend.Record{
			Topic:            topic,
			AverageInterest:  &avg,
			InterestOverTime: series,
		})
	}
	return records, nil
}

func (c *GoogleTrendsClient) dailyTrends(ctx context.Context) ([]string, error) {
	query := url.Values{}
	query.Set("hl", c.language)
	query.Set("tz", "360")
	query.Set("geo", c.geo)

	body, err := c.get(ctx, "/trends/api/dailytrends", query)
	if err != nil {
		return nil, err
	}

	var parsed dailyTrendsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode daily trends: %v", trend.ErrSourceUnavailable, err)
	}

	var topics []string
	for _, day := range parsed.Default.TrendingSearchesDays {
		for _, search := range day.TrendingSearches {
			topics = append(topics, search.Title.Query)
		}
	}
	return topics, nil
}

// interestOverTime performs the two-step widget protocol: the explore call
// issues a token for the TIMESERIES widget, the multiline call redeems it.
func (c *GoogleTrendsClient) interestOverTime(ctx context.Context, topic string) ([]float64, error) {
	exploreReq, err := json.Marshal(map[string]any{
		"comparisonItem": []map[string]string{
			{"keyword": topic, "geo": c.geo, "time": c.timeframe},
		},
		"category": 0,
		"property": "",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal explore request: %v", trend.ErrSourceUnavailable, err)
	}

	query := url.Values{}
	query.Set("hl", c.language)
	query.Set("tz", "360")
	query.Set("req", string(exploreReq))

	body, err := c.get(ctx, "/trends/api/explore", query)
	if err != nil {
		return nil, err
	}

	var explore exploreResponse
	if err := json.Unmarshal(body, &explore); err != nil {
		return nil, fmt.Errorf("%w: decode explore response: %v", trend.ErrSourceUnavailable, err)
	}

	var token string
	var widgetReq json.RawMessage
	for _, widget := range explore.Widgets {
		if widget.ID == "TIMESERIES" {
			token = widget.Token
			widgetReq = widget.Request
			break
		}
	}
	if token == "" {
		return nil, fmt.Errorf("%w: no timeseries widget for %q", trend.ErrSourceUnavailable, topic)
	}

	query = url.Values{}
	query.Set("hl", c.language)
	query.Set("tz", "360")
	query.Set("req", string(widgetReq))
	query.Set("token", token)

	body, err = c.get(ctx, "/trends/api/widgetdata/multiline", query)
	if err != nil {
		return nil, err
	}

	var multiline multilineResponse
	if err := json.Unmarshal(body, &multiline); err != nil {
		return nil, fmt.Errorf("%w: decode timeline response: %v", trend.ErrSourceUnavailable, err)
	}

	var series []float64
	for _, point := range multiline.Default.TimelineData {
		if len(point.Value) > 0 {
			series = append(series, point.Value[0])
		}
	}
	return series, nil
}

func (c *GoogleTrendsClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create google trends request: %v", trend.ErrSourceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: google trends request failed: %v", trend.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: google trends returned status %d", trend.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read google trends response: %v", trend.ErrSourceUnavailable, err)
	}

	return stripJSONPrefix(body), nil
}

// stripJSONPrefix drops the `)]}'` garbage Google prepends to its JSON
// endpoints.
func stripJSONPrefix(body []byte) []byte {
	if idx := bytes.IndexAny(body, "{["); idx > 0 {
		return body[idx:]
	}
	return body
}
