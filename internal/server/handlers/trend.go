// internal/server/handlers/trend.go

package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"trendscope/internal/domain/trend"
)

// TrendHandler handles raw-trend HTTP requests.
type TrendHandler struct {
	sources trend.SourceRegistry
}

// NewTrendHandler creates a new trend handler.
func NewTrendHandler(sources trend.SourceRegistry) *TrendHandler {
	return &TrendHandler{sources: sources}
}

type platformTrendsResponse struct {
	Platform  string         `json:"platform"`
	Timestamp time.Time      `json:"timestamp"`
	Trends    []trend.Record `json:"trends"`
}

// GetPlatformTrends returns the raw trending records of one platform.
func (h *TrendHandler) GetPlatformTrends(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "platform")

	source, err := h.sources.Lookup(name)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Unsupported platform: "+name, nil)
		return
	}

	records, err := source.FetchTrending(r.Context())
	if err != nil {
		if errors.Is(err, trend.ErrSourceUnavailable) {
			respondWithError(w, http.StatusBadGateway, "Failed to fetch trends", err)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch trends", err)
		}
		return
	}
	if records == nil {
		records = []trend.Record{}
	}

	respondWithJSON(w, http.StatusOK, platformTrendsResponse{
		Platform:  string(source.Platform()),
		Timestamp: time.Now().UTC(),
		Trends:    records,
	})
}

type allTrendsResponse struct {
	Timestamp time.Time                 `json:"timestamp"`
	Platforms map[string][]trend.Record `json:"platforms"`
	Errors    map[string]string         `json:"errors,omitempty"`
}

// GetAllTrends fans out across every registered platform concurrently. A
// failing platform degrades to an entry in the errors map instead of failing
// the whole response.
func (h *TrendHandler) GetAllTrends(w http.ResponseWriter, r *http.Request) {
	var (
		mu        sync.Mutex
		platforms = make(map[string][]trend.Record)
		failures  = make(map[string]string)
	)

	g, ctx := errgroup.WithContext(r.Context())
	for _, source := range h.sources.All() {
		source := source
		g.Go(func() error {
			records, err := source.FetchTrending(ctx)
			if records == nil {
				records = []trend.Record{}
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[string(source.Platform())] = err.Error()
			} else {
				platforms[string(source.Platform())] = records
			}
			return nil
		})
	}
	// Sources record their own failures above; Wait only synchronizes.
	_ = g.Wait()

	respondWithJSON(w, http.StatusOK, allTrendsResponse{
		Timestamp: time.Now().UTC(),
		Platforms: platforms,
		Errors:    failures,
	})
}
