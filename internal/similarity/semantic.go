package similarity

import (
	"context"
	"fmt"
)

// Embedder provides sentence embeddings for short texts.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SemanticScorer measures meaning similarity between two words via the
// cosine distance of their sentence embeddings.
type SemanticScorer struct {
	embedder Embedder
}

// NewSemanticScorer creates a scorer backed by the given embedding provider.
func NewSemanticScorer(embedder Embedder) *SemanticScorer {
	return &SemanticScorer{embedder: embedder}
}

// Score embeds both words in a single provider call, computes their cosine
// similarity, and rescales it from the provider's native [-1,1] range to
// [0,1] via (cos+1)/2.
func (s *SemanticScorer) Score(ctx context.Context, a, b string) (float64, error) {
	embs, err := s.embedder.EmbedTexts(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("embed pair: %w", err)
	}
	if len(embs) != 2 || len(embs[0]) == 0 || len(embs[1]) == 0 {
		return 0, fmt.Errorf("embedding provider returned %d vectors for 2 inputs", len(embs))
	}

	score := (Cosine(embs[0], embs[1]) + 1) / 2
	if score < 0 {
		return 0, nil
	}
	if score > 1 {
		return 1, nil
	}
	return score, nil
}
