// internal/service/analysis/scorer.go

package analysis

import (
	"math"

	"trendscope/internal/domain/trend"
)

const maxScore = 100

// Per-platform caps that equalize metric scales differing by orders of
// magnitude, without needing historical calibration data.
const (
	maxMentionPoints = 50
	maxCommentPoints = 50
)

// Score normalizes a record's platform-specific engagement metrics into an
// integer popularity score in [0, 100]. It is total: records with no
// recognized metric shape score 0.
func Score(rec trend.Record) int {
	var points float64

	switch rec.MetricKind() {
	case trend.MetricLinkAggregator:
		points = math.Min(float64(*rec.Mentions)/1000, maxMentionPoints)
		if rec.Comments != nil {
			points += math.Min(float64(*rec.Comments)/100, maxCommentPoints)
		}

	case trend.MetricMicroblog:
		points = math.Min(float64(rec.Engagement.Retweets+rec.Engagement.Likes)/1000, maxScore)

	case trend.MetricShortVideo:
		total := rec.Stats.Likes + rec.Stats.Shares*2 + rec.Stats.Comments*3
		points = math.Min(float64(total)/10000, maxScore)

	case trend.MetricSearchInterest:
		// Already on a 0-100 scale; the final clamp below is the only
		// guard against out-of-range upstream values.
		points = *rec.AverageInterest

	case trend.MetricNone:
		points = 0
	}

	// Clamp before converting: float-to-int conversion of values outside
	// the int range is implementation-defined, so an enormous upstream
	// interest value would otherwise wrap instead of saturating.
	if points > maxScore {
		points = maxScore
	}
	if points < 0 {
		points = 0
	}
	return int(points)
}
