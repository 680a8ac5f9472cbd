// internal/domain/trend/contracts.go

package trend

import (
	"context"
	"errors"
)

// Failure kinds recognized by the analysis core. Collaborators wrap these
// with %w so callers can branch with errors.Is.
var (
	// ErrNarrativeService marks a failure of the upstream narrative
	// (LLM) service: transport, quota, or an unusable response.
	ErrNarrativeService = errors.New("narrative service failure")

	// ErrSourceUnavailable marks a failure of an upstream platform
	// scraper.
	ErrSourceUnavailable = errors.New("trend source unavailable")

	// ErrUnsupportedPlatform marks a platform name outside the supported
	// set.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Narrator produces a free-text assessment for one trend record.
type Narrator interface {
	// Narrate returns the narrative text for a record, or an error
	// wrapping ErrNarrativeService.
	Narrate(ctx context.Context, rec Record) (string, error)
}

// Source fetches raw trending records from one platform.
type Source interface {
	// Platform returns the platform this source scrapes.
	Platform() Platform

	// FetchTrending returns current trending records, or an error
	// wrapping ErrSourceUnavailable.
	FetchTrending(ctx context.Context) ([]Record, error)
}

// SourceRegistry resolves platform names to record sources.
type SourceRegistry interface {
	// Lookup returns the source for a platform name, or an error
	// wrapping ErrUnsupportedPlatform.
	Lookup(name string) (Source, error)

	// All returns every registered source in a stable order.
	All() []Source
}

// Analyzer turns raw platform records into analysis results.
type Analyzer interface {
	// AnalyzeOne analyzes a single record. Narrative failures are
	// reified into the returned Result, never propagated.
	AnalyzeOne(ctx context.Context, rec Record) Result

	// AnalyzeMany stamps every record with the platform and analyzes
	// them in order. The output always has one result per input record,
	// at the same index.
	AnalyzeMany(ctx context.Context, recs []Record, platform Platform) []Result
}
