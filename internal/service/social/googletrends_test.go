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

func TestGoogleTrendsFetchTrending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trends/api/dailytrends":
			assert.Equal(t, "US", r.URL.Query().Get("geo"))
			fmt.Fprint(w, `)]}',`+"\n")
			fmt.Fprint(w, `{"default":{"trendingSearchesDays":[{"trendingSearches":[{"title":{"query":"solar eclipse"}}]}]}}`)

		case "/trends/api/explore":
			var req struct {
				ComparisonItem []struct {
					Keyword string `json:"keyword"`
					Geo     string `json:"geo"`
					Time    string `json:"time"`
				} `json:"comparisonItem"`
			}
			require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("req")), &req))
			require.Len(t, req.ComparisonItem, 1)
			assert.Equal(t, "solar eclipse", req.ComparisonItem[0].Keyword)
			assert.Equal(t, "now 7-d", req.ComparisonItem[0].Time)

			fmt.Fprint(w, `)]}'`+"\n")
			fmt.Fprint(w, `{"widgets":[
				{"id":"RELATED_QUERIES","token":"nope","request":{}},
				{"id":"TIMESERIES","token":"tok-123","request":{"time":"now 7-d"}}
			]}`)

		case "/trends/api/widgetdata/multiline":
			assert.Equal(t, "tok-123", r.URL.Query().Get("token"))
			fmt.Fprint(w, `)]}',`+"\n")
			fmt.Fprint(w, `{"default":{"timelineData":[{"value":[70]},{"value":[75]},{"value":[80]}]}}`)

		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewGoogleTrendsClient(GoogleTrendsConfig{BaseURL: server.URL})

	records, err := client.FetchTrending(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, trend.PlatformGoogle, client.Platform())
	assert.Equal(t, "solar eclipse", records[0].Topic)
	require.NotNil(t, records[0].AverageInterest)
	assert.InDelta(t, 75.0, *records[0].AverageInterest, 0.001)
	assert.Equal(t, []float64{70, 75, 80}, records[0].InterestOverTime)
	assert.Equal(t, trend.MetricSearchInterest, records[0].MetricKind())
}

func TestGoogleTrendsSkipsEmptySeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trends/api/dailytrends":
			fmt.Fprint(w, `)]}',{"default":{"trendingSearchesDays":[{"trendingSearches":[{"title":{"query":"ghost topic"}}]}]}}`)
		case "/trends/api/explore":
			fmt.Fprint(w, `)]}'{"widgets":[{"id":"TIMESERIES","token":"tok","request":{}}]}`)
		case "/trends/api/widgetdata/multiline":
			fmt.Fprint(w, `)]}',{"default":{"timelineData":[]}}`)
		}
	}))
	defer server.Close()

	client := NewGoogleTrendsClient(GoogleTrendsConfig{BaseURL: server.URL})

	records, err := client.FetchTrending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGoogleTrendsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGoogleTrendsClient(GoogleTrendsConfig{BaseURL: server.URL})

	_, err := client.FetchTrending(context.Background())
	assert.ErrorIs(t, err, trend.ErrSourceUnavailable)
}

func TestStripJSONPrefix(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(stripJSONPrefix([]byte(")]}',\n{\"a\":1}"))))
	assert.Equal(t, `{"a":1}`, string(stripJSONPrefix([]byte(`{"a":1}`))))
	assert.Equal(t, `[1,2]`, string(stripJSONPrefix([]byte(")]}'[1,2]"))))
}
