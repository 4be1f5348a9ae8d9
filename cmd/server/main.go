package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/api"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/config"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/embeddings"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/nli"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/relation"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/scoring"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/similarity"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/pkg/models"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var embedOpts []embeddings.ClientOption
	embedOpts = append(embedOpts, embeddings.WithModel(cfg.SemanticModel))
	if url := os.Getenv("EMBEDDINGS_BASE_URL"); url != "" {
		embedOpts = append(embedOpts, embeddings.WithBaseURL(url))
	}
	embedder := embeddings.NewClient(os.Getenv("EMBEDDINGS_API_KEY"), embedOpts...)

	entailer := nli.NewClient(nli.Config{
		APIKey:  os.Getenv("NLI_API_KEY"),
		BaseURL: os.Getenv("NLI_BASE_URL"),
		Model:   cfg.NLIModel,
	})

	classifier := relation.NewClassifier(entailer, cfg.Patterns, cfg.RelationProbes, cfg.ContradictionProbes, 0)
	hints := relation.NewHintGenerator(cfg.Patterns, cfg.HintThresholds, cfg.DetailSuffixes)
	svc := scoring.NewService(similarity.NewSemanticScorer(embedder), classifier, hints, scoring.StubMatcher{}, cfg)

	warmup(svc)

	server := api.NewServer(api.ServerConfig{
		Scoring: svc,
		Config:  cfg,
	})

	fmt.Printf("Starting similarity server on port %s\n", port)
	if err := server.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// warmup pushes one pair through the full pipeline so the providers have
// their models loaded before the first real request. Failures are logged
// and ignored.
func warmup(svc *scoring.Service) {
	if os.Getenv("SKIP_WARMUP") != "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	if _, err := svc.Process(ctx, models.WordPair{Input: "워밍업", Answer: "테스트"}); err != nil {
		log.Printf("Warmup failed (continuing): %v", err)
		return
	}
	log.Printf("Warmup finished in %.2fs", time.Since(start).Seconds())
}
