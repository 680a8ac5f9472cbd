// internal/server/handlers/analyze.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"trendscope/internal/domain/trend"
)

// AnalyzeHandler handles trend-analysis HTTP requests.
type AnalyzeHandler struct {
	sources  trend.SourceRegistry
	analyzer trend.Analyzer
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(sources trend.SourceRegistry, analyzer trend.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{sources: sources, analyzer: analyzer}
}

type analysisResponse struct {
	Platform       string         `json:"platform,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
	AnalysisID     string         `json:"analysis_id"`
	AnalyzedTrends []trend.Result `json:"analyzed_trends"`
}

// AnalyzePlatform fetches a platform's trending records and analyzes them.
func (h *AnalyzeHandler) AnalyzePlatform(w http.ResponseWriter, r *http.Request) {
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

	results := h.analyzer.AnalyzeMany(r.Context(), records, source.Platform())
	if results == nil {
		results = []trend.Result{}
	}

	respondWithJSON(w, http.StatusOK, analysisResponse{
		Platform:       string(source.Platform()),
		Timestamp:      time.Now().UTC(),
		AnalysisID:     uuid.NewString(),
		AnalyzedTrends: results,
	})
}

// AnalyzeRecords analyzes caller-provided records in order. Records are
// analyzed as sent; no platform stamping happens here.
func (h *AnalyzeHandler) AnalyzeRecords(w http.ResponseWriter, r *http.Request) {
	var records []trend.Record
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	results := make([]trend.Result, 0, len(records))
	for _, rec := range records {
		results = append(results, h.analyzer.AnalyzeOne(r.Context(), rec))
	}

	respondWithJSON(w, http.StatusOK, analysisResponse{
		Timestamp:      time.Now().UTC(),
		AnalysisID:     uuid.NewString(),
		AnalyzedTrends: results,
	})
}
