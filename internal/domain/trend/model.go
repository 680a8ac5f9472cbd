// internal/domain/trend/model.go

package trend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Platform identifies one of the supported trend sources.
type Platform string

const (
	PlatformReddit  Platform = "reddit"
	PlatformGoogle  Platform = "google"
	PlatformTikTok  Platform = "tiktok"
	PlatformTwitter Platform = "twitter"
)

// Platforms returns every supported platform in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformReddit, PlatformGoogle, PlatformTikTok, PlatformTwitter}
}

// ParsePlatform resolves a platform name from a request path or query.
// Matching is case-insensitive; unknown names yield ErrUnsupportedPlatform.
func ParsePlatform(name string) (Platform, error) {
	switch p := Platform(strings.ToLower(name)); p {
	case PlatformReddit, PlatformGoogle, PlatformTikTok, PlatformTwitter:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, name)
	}
}

// Engagement holds microblog-style engagement counts.
type Engagement struct {
	Retweets int `json:"retweets"`
	Likes    int `json:"likes"`
}

// VideoStats holds short-video engagement counts.
type VideoStats struct {
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// Record is one raw trending topic as reported by a platform source.
//
// Each platform reports a different metric shape; a record carries at most
// one of them as its primary shape. Optional shapes are pointers so an
// absent field is distinguishable from a zero value, and MetricKind resolves
// which shape is primary.
type Record struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform,omitempty"`

	// Link-aggregator shape (post score plus comment count).
	Mentions *int `json:"mentions,omitempty"`
	Comments *int `json:"comments,omitempty"`

	// Microblog shape.
	Engagement *Engagement `json:"engagement,omitempty"`

	// Short-video shape.
	Stats *VideoStats `json:"stats,omitempty"`

	// Search-interest shape, already on a 0-100 scale.
	AverageInterest *float64 `json:"average_interest,omitempty"`

	// Carrier fields the scrapers attach for traceability. They never
	// participate in scoring.
	URL              string    `json:"url,omitempty"`
	Subreddit        string    `json:"subreddit,omitempty"`
	Hashtags         []string  `json:"hashtags,omitempty"`
	InterestOverTime []float64 `json:"interest_over_time,omitempty"`
	CreatedAt        string    `json:"created_at,omitempty"`
}

// MetricKind discriminates the primary metric shape of a Record.
type MetricKind int

const (
	MetricNone MetricKind = iota
	MetricLinkAggregator
	MetricMicroblog
	MetricShortVideo
	MetricSearchInterest
)

// MetricKind resolves the record's primary shape. When a record structurally
// satisfies more than one shape the first match in this priority order wins:
// link-aggregator, microblog, short-video, search-interest.
func (r Record) MetricKind() MetricKind {
	switch {
	case r.Mentions != nil:
		return MetricLinkAggregator
	case r.Engagement != nil:
		return MetricMicroblog
	case r.Stats != nil:
		return MetricShortVideo
	case r.AverageInterest != nil:
		return MetricSearchInterest
	default:
		return MetricNone
	}
}

// GrowthRate is a coarse growth classification extracted from a narrative.
type GrowthRate string

const (
	GrowthHigh   GrowthRate = "high"
	GrowthMedium GrowthRate = "medium"
	GrowthLow    GrowthRate = "low"
)

// Lifespan is a coarse lifespan prediction extracted from a narrative.
type Lifespan string

const (
	LifespanShort  Lifespan = "short"
	LifespanMedium Lifespan = "medium"
	LifespanLong   Lifespan = "long"
)

// Insight is the normalized analysis result for one record.
type Insight struct {
	Platform          string     `json:"platform"`
	Topic             string     `json:"topic"`
	PopularityScore   int        `json:"popularity_score"`
	GrowthRate        GrowthRate `json:"growth_rate"`
	PredictedLifespan Lifespan   `json:"predicted_lifespan"`
	ActionableInsight string     `json:"actionable_insight"`
	RawMetrics        Record     `json:"raw_metrics"`
}

// Failure is the degraded result substituted for an Insight when narrative
// generation fails. The raw record is echoed so callers can retry or inspect.
type Failure struct {
	Error        string `json:"error"`
	RawTrendData Record `json:"raw_trend_data"`
}

// Result carries either an Insight or a Failure. Callers discriminate with
// OK before touching either branch.
type Result struct {
	Insight *Insight
	Failure *Failure
}

// Succeed wraps an Insight in a Result.
func Succeed(in Insight) Result {
	return Result{Insight: &in}
}

// Fail reifies an analysis error as a Result carrying the raw record.
func Fail(message string, rec Record) Result {
	return Result{Failure: &Failure{Error: message, RawTrendData: rec}}
}

// OK reports whether the result carries an Insight.
func (r Result) OK() bool {
	return r.Failure == nil && r.Insight != nil
}

// MarshalJSON flattens the result to either the insight object or the
// failure object, so callers on the wire discriminate by the presence of
// the "error" key.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(r.Failure)
	}
	if r.Insight != nil {
		return json.Marshal(r.Insight)
	}
	return []byte("null"), nil
}
