package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/config"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/relation"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/scoring"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/pkg/models"
)

type stubSemantic struct {
	score float64
	err   error
}

func (s *stubSemantic) Score(ctx context.Context, a, b string) (float64, error) {
	return s.score, s.err
}

type stubClassifier struct {
	verdict relation.Verdict
	err     error
}

func (s *stubClassifier) Classify(ctx context.Context, input, answer string) (relation.Verdict, error) {
	return s.verdict, s.err
}

func newTestServer(semantic *stubSemantic, classifier *stubClassifier) *Server {
	cfg := config.Default()
	hints := relation.NewHintGenerator(cfg.Patterns, cfg.HintThresholds, cfg.DetailSuffixes)
	svc := scoring.NewService(semantic, classifier, hints, nil, cfg)
	return NewServer(ServerConfig{Scoring: svc, Config: cfg})
}

func TestHandleCalculate(t *testing.T) {
	server := newTestServer(
		&stubSemantic{score: 0.62},
		&stubClassifier{verdict: relation.Verdict{
			Pattern:       relation.PatternPersonal,
			Confidence:    0.82,
			Relational:    0.38,
			Contradiction: 0.05,
		}},
	)

	body := `{"user_input": "친구", "answer": "배신"}`
	req := httptest.NewRequest(http.MethodPost, "/api/similarity/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result models.ScoreResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.SimilarityScore <= 0 || result.SimilarityScore >= 100 {
		t.Errorf("expected partial score, got %f", result.SimilarityScore)
	}
	if result.Hint != "친구 사이에서 나타나는 것이에요" {
		t.Errorf("unexpected hint %q", result.Hint)
	}
	if result.CategoryMatch {
		t.Error("expected no category match from the stub matcher")
	}
	if result.Breakdown.Semantic != 0.62 {
		t.Errorf("expected semantic 0.62 in breakdown, got %f", result.Breakdown.Semantic)
	}
}

func TestHandleCalculate_InvalidBody(t *testing.T) {
	server := newTestServer(&stubSemantic{}, &stubClassifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/similarity/calculate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCalculate_EmptyInput(t *testing.T) {
	server := newTestServer(&stubSemantic{}, &stubClassifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/similarity/calculate", strings.NewReader(`{"user_input": "", "answer": "배신"}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp["error"], "user_input") {
		t.Errorf("error should name the rejected field, got %q", resp["error"])
	}
}

func TestHandleCalculate_ProviderUnavailable(t *testing.T) {
	server := newTestServer(
		&stubSemantic{err: errors.New("connection refused")},
		&stubClassifier{},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/similarity/calculate", strings.NewReader(`{"user_input": "친구", "answer": "배신"}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp["error"], "embedding") {
		t.Errorf("error should name the failed provider, got %q", resp["error"])
	}
}

func TestHandleCalculate_ExactMatch(t *testing.T) {
	server := newTestServer(&stubSemantic{}, &stubClassifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/similarity/calculate", strings.NewReader(`{"user_input": "배신", "answer": "배신"}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result models.ScoreResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.SimilarityScore != 100.0 {
		t.Errorf("expected 100, got %f", result.SimilarityScore)
	}
	if !result.CategoryMatch {
		t.Error("expected category match for exact answer")
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(&stubSemantic{}, &stubClassifier{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected health body %q", rec.Body.String())
	}
}

func TestHandleGetConfig(t *testing.T) {
	server := newTestServer(&stubSemantic{}, &stubClassifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Weights map[string]float64 `json:"weights"`
		Models  map[string]string  `json:"models"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Weights["semantic"] != 0.50 {
		t.Errorf("expected semantic weight 0.50, got %f", resp.Weights["semantic"])
	}
	if resp.Models["nli"] == "" {
		t.Error("expected nli model name in config response")
	}
}
