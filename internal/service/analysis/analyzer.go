// internal/service/analysis/analyzer.go

package analysis

import (
	"context"
	"fmt"

	"trendscope/internal/domain/trend"
)

// Analyzer implements trend.Analyzer on top of a narrative collaborator.
// It holds no mutable state, so independent requests may analyze
// concurrently; within one AnalyzeMany call records are processed one at a
// time to keep ordering trivial and avoid bursting the upstream service.
type Analyzer struct {
	narrator trend.Narrator
}

// NewAnalyzer creates an analyzer backed by the given narrative service.
func NewAnalyzer(narrator trend.Narrator) *Analyzer {
	return &Analyzer{narrator: narrator}
}

// AnalyzeOne requests a narrative for the record and shapes it into an
// insight. Any narrator failure is captured and reified as a Failure result
// carrying the raw record; this method never returns an error.
func (a *Analyzer) AnalyzeOne(ctx context.Context, rec trend.Record) trend.Result {
	narrative, err := a.narrator.Narrate(ctx, rec)
	if err != nil {
		return trend.Fail(fmt.Sprintf("failed to analyze trend: %v", err), rec)
	}

	return trend.Succeed(BuildInsight(narrative, rec))
}

// AnalyzeMany stamps every record with the platform, then analyzes them
// sequentially. A failure on one record does not abort the rest; the output
// always has exactly one result per input record, at the same index.
func (a *Analyzer) AnalyzeMany(ctx context.Context, recs []trend.Record, platform trend.Platform) []trend.Result {
	results := make([]trend.Result, 0, len(recs))
	for _, rec := range recs {
		rec.Platform = string(platform)
		results = append(results, a.AnalyzeOne(ctx, rec))
	}
	return results
}
