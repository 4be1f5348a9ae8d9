package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/scoring"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/pkg/models"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "WordTreasure Similarity Service",
		"status":  "running",
		"features": []string{
			"Semantic Similarity (의미 유사도)",
			"Relational Similarity (관계 유사도)",
			"Formative Similarity (형태 유사도)",
			"Contextual Hints (맥락적 힌트)",
			"Relationship Analysis (관계 분석)",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var pair models.WordPair
	if err := json.NewDecoder(r.Body).Decode(&pair); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reqID := uuid.NewString()
	log.Printf("[%s] similarity request input=%q answer=%q", reqID, pair.Input, pair.Answer)

	result, err := s.scoring.Process(r.Context(), pair)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		var perr *scoring.ProviderError
		if errors.As(err, &perr) {
			log.Printf("[%s] provider failure: %v", reqID, perr)
			respondError(w, http.StatusBadGateway, perr.Provider+" provider unavailable")
			return
		}
		log.Printf("[%s] scoring failed: %v", reqID, err)
		respondError(w, http.StatusInternalServerError, "similarity calculation failed")
		return
	}

	log.Printf("[%s] score=%.2f hint=%q time=%.2fms", reqID, result.SimilarityScore, result.Hint, result.ProcessingTimeMs)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"weights": map[string]float64{
			"semantic":   s.cfg.Weights.Semantic,
			"relational": s.cfg.Weights.Relational,
			"formative":  s.cfg.Weights.Formative,
		},
		"models": map[string]string{
			"semantic": s.cfg.SemanticModel,
			"nli":      s.cfg.NLIModel,
		},
		"target_latency_ms": s.cfg.TargetLatencyMs,
	})
}
