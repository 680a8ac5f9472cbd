// internal/service/narrative/openai.go

package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trendscope/internal/domain/trend"
)

// Config holds the narrative service settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// OpenAINarrator requests trend narratives from an OpenAI-compatible
// chat-completions endpoint. It implements trend.Narrator; every failure it
// returns wraps trend.ErrNarrativeService.
type OpenAINarrator struct {
	cfg    Config
	client *http.Client
}

// NewOpenAINarrator creates a narrator, filling in defaults for any unset
// endpoint, model, or sampling settings.
func NewOpenAINarrator(cfg Config) *OpenAINarrator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = "gpt-4"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 500
	}

	return &OpenAINarrator{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Narrate asks the model for a qualitative assessment of one record and
// returns the raw narrative text.
func (n *OpenAINarrator) Narrate(ctx context.Context, rec trend.Record) (string, error) {
	if n.cfg.APIKey == "" {
		return "", fmt.Errorf("%w: api key not configured", trend.ErrNarrativeService)
	}

	prompt, err := buildPrompt(rec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", trend.ErrNarrativeService, err)
	}

	payload, err := json.Marshal(chatRequest{
		Model: n.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: n.cfg.Temperature,
		MaxTokens:   n.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", trend.ErrNarrativeService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", trend.ErrNarrativeService, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", trend.ErrNarrativeService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", trend.ErrNarrativeService, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: unexpected status %d: %s", trend.ErrNarrativeService, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", trend.ErrNarrativeService, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", trend.ErrNarrativeService)
	}

	return parsed.Choices[0].Message.Content, nil
}
