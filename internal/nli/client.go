package nli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Scores is the normalized label distribution returned by the entailment
// provider for one premise/hypothesis pair. Each component lies in [0,1].
type Scores struct {
	Entailment    float64
	Neutral       float64
	Contradiction float64
}

// Client submits premise/hypothesis pairs to an NLI inference server.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Config holds client configuration
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8081",
		Model:   "facebook/bart-large-mnli",
		Timeout: 30 * time.Second,
	}
}

// NewClient creates a new entailment client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultConfig().BaseURL
	}
	if config.Model == "" {
		config.Model = DefaultConfig().Model
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultConfig().Timeout
	}

	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Model returns the configured NLI model name.
func (c *Client) Model() string {
	return c.model
}

type classifyRequest struct {
	Model      string `json:"model"`
	Premise    string `json:"premise"`
	Hypothesis string `json:"hypothesis"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classifyResponse struct {
	Labels []labelScore `json:"labels"`
}

// Entail returns the entailment label distribution for one
// premise/hypothesis pair. Calls are stateless and safe for concurrent use.
func (c *Client) Entail(ctx context.Context, premise, hypothesis string) (Scores, error) {
	reqBody := classifyRequest{
		Model:      c.model,
		Premise:    premise,
		Hypothesis: hypothesis,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return Scores{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/classify", bytes.NewReader(jsonBody))
	if err != nil {
		return Scores{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Scores{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Scores{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var cr classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return Scores{}, fmt.Errorf("decode response: %w", err)
	}

	if len(cr.Labels) == 0 {
		return Scores{}, fmt.Errorf("empty label distribution")
	}

	var scores Scores
	for _, ls := range cr.Labels {
		switch ls.Label {
		case "entailment":
			scores.Entailment = ls.Score
		case "neutral":
			scores.Neutral = ls.Score
		case "contradiction":
			scores.Contradiction = ls.Score
		}
	}

	return scores, nil
}
