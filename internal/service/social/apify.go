// internal/service/social/apify.go

package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"trendscope/internal/domain/trend"
)

// ApifyClient runs Apify actors through the synchronous run endpoint and
// decodes the resulting dataset items. TikTok and Twitter are both reached
// through this proxy because neither exposes a usable trends API directly.
type ApifyClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewApifyClient creates an Apify client. An empty baseURL selects the
// public API endpoint.
func NewApifyClient(token, baseURL string) *ApifyClient {
	if baseURL == "" {
		baseURL = "https://api.apify.com"
	}

	return &ApifyClient{
		// Actor runs block server-side until the scrape finishes, so
		// this client waits far longer than the other scrapers.
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}
}

// RunActor starts an actor with the given input, waits for it to finish, and
// decodes its dataset items into out.
func (c *ApifyClient) RunActor(ctx context.Context, actorID string, input any, out any) error {
	if c.token == "" {
		return fmt.Errorf("%w: apify token not configured", trend.ErrSourceUnavailable)
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("%w: marshal actor input: %v", trend.ErrSourceUnavailable, err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, actorID, url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: create apify request: %v", trend.ErrSourceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: apify request failed: %v", trend.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: apify actor %s returned status %d", trend.ErrSourceUnavailable, actorID, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode apify dataset: %v", trend.ErrSourceUnavailable, err)
	}
	return nil
}
