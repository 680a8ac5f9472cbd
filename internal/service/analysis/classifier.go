// internal/service/analysis/classifier.go

package analysis

import (
	"strings"

	"trendscope/internal/domain/trend"
)

// insightMarker is the literal the narrative prompt asks the model to emit
// before its final recommendation. The split is case-sensitive on this exact
// lowercase form; the growth and lifespan checks below are case-insensitive.
const insightMarker = "actionable insight:"

// Classification holds the coarse labels extracted from a narrative.
type Classification struct {
	GrowthRate        trend.GrowthRate
	PredictedLifespan trend.Lifespan
	ActionableInsight string
}

// Classify derives coarse growth and lifespan labels from a narrative by
// phrase matching, and extracts the actionable-insight tail when the marker
// is present. This is a deliberately blunt substitute for structured-output
// parsing; the phrases are part of the prompt contract and must not drift.
func Classify(narrative string) Classification {
	lower := strings.ToLower(narrative)

	growth := trend.GrowthLow
	switch {
	case strings.Contains(lower, "growing rapidly"):
		growth = trend.GrowthHigh
	case strings.Contains(lower, "steady growth"):
		growth = trend.GrowthMedium
	}

	lifespan := trend.LifespanMedium
	switch {
	case strings.Contains(lower, "long-term"):
		lifespan = trend.LifespanLong
	case strings.Contains(lower, "short-lived"):
		lifespan = trend.LifespanShort
	}

	// Everything after the last marker occurrence; the full narrative
	// when the marker never appears.
	insight := narrative
	if idx := strings.LastIndex(narrative, insightMarker); idx >= 0 {
		insight = strings.TrimSpace(narrative[idx+len(insightMarker):])
	}

	return Classification{
		GrowthRate:        growth,
		PredictedLifespan: lifespan,
		ActionableInsight: insight,
	}
}
