// internal/service/analysis/insight.go

package analysis

import (
	"trendscope/internal/domain/trend"
)

// unknownPlatform labels insights built from records that carry no platform.
const unknownPlatform = "unknown"

// BuildInsight composes the scorer and classifier outputs with the record
// into one normalized insight. The record is echoed in RawMetrics for
// traceability.
func BuildInsight(narrative string, rec trend.Record) trend.Insight {
	platform := rec.Platform
	if platform == "" {
		platform = unknownPlatform
	}

	c := Classify(narrative)

	return trend.Insight{
		Platform:          platform,
		Topic:             rec.Topic,
		PopularityScore:   Score(rec),
		GrowthRate:        c.GrowthRate,
		PredictedLifespan: c.PredictedLifespan,
		ActionableInsight: c.ActionableInsight,
		RawMetrics:        rec,
	}
}
