package scoring

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/config"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/relation"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/similarity"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/pkg/models"
)

// SemanticScorer measures meaning similarity between two words in [0,1].
type SemanticScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// RelationClassifier picks the best supported relation pattern and yields
// the relational and contradiction signals.
type RelationClassifier interface {
	Classify(ctx context.Context, input, answer string) (relation.Verdict, error)
}

// CategoryMatcher reports whether two words belong to the same category.
// Real category gating arrives in a later phase.
type CategoryMatcher interface {
	SameCategory(ctx context.Context, a, b string) bool
}

// StubMatcher is the placeholder category collaborator: no pair matches.
type StubMatcher struct{}

func (StubMatcher) SameCategory(ctx context.Context, a, b string) bool {
	return false
}

// Service orchestrates one word pair through the three similarity signals,
// aggregation and hint generation.
type Service struct {
	semantic    SemanticScorer
	classifier  RelationClassifier
	hints       *relation.HintGenerator
	categories  CategoryMatcher
	weights     config.Weights
	maxInputLen int
	exactHint   string
}

// NewService assembles the scoring pipeline. The configuration must already
// be validated.
func NewService(semantic SemanticScorer, classifier RelationClassifier, hints *relation.HintGenerator, categories CategoryMatcher, cfg config.Config) *Service {
	if categories == nil {
		categories = StubMatcher{}
	}
	return &Service{
		semantic:    semantic,
		classifier:  classifier,
		hints:       hints,
		categories:  categories,
		weights:     cfg.Weights,
		maxInputLen: cfg.MaxInputLen,
		exactHint:   cfg.ExactMatchHint,
	}
}

// Process validates the pair, computes the three leaf signals (concurrently
// where they touch a provider), aggregates them into a score, and renders
// the hint. The returned result is owned by the caller; no state is retained.
func (s *Service) Process(ctx context.Context, pair models.WordPair) (*models.ScoreResult, error) {
	start := time.Now()

	if err := s.validate(pair); err != nil {
		return nil, err
	}

	normInput := similarity.Normalize(pair.Input)
	normAnswer := similarity.Normalize(pair.Answer)

	// Exact match (ignoring spacing, case and punctuation) skips the
	// providers entirely.
	if normInput == normAnswer {
		return &models.ScoreResult{
			SimilarityScore: 100.0,
			Hint:            s.exactHint,
			CategoryMatch:   true,
			Breakdown: models.Breakdown{
				Semantic:      1.0,
				Relational:    1.0,
				Formative:     1.0,
				Contradiction: 0.0,
			},
			ProcessingTimeMs: elapsedMs(start),
		}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		semantic float64
		verdict  relation.Verdict

		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		v, err := s.semantic.Score(ctx, pair.Input, pair.Answer)
		if err != nil {
			fail(&ProviderError{Provider: "embedding", Err: err})
			return
		}
		mu.Lock()
		semantic = v
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		v, err := s.classifier.Classify(ctx, pair.Input, pair.Answer)
		if err != nil {
			fail(&ProviderError{Provider: "entailment", Err: err})
			return
		}
		mu.Lock()
		verdict = v
		mu.Unlock()
	}()

	// The formative signal is pure CPU work; it runs on this goroutine
	// while the provider calls are in flight.
	formative := similarity.JamoScore(normInput, normAnswer)

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	breakdown := models.Breakdown{
		Semantic:      round4(semantic),
		Relational:    round4(verdict.Relational),
		Formative:     round4(formative),
		Contradiction: round4(verdict.Contradiction),
	}
	score := Aggregate(breakdown, s.weights)
	hint := s.hints.Generate(verdict, pair.Input, score, breakdown)

	return &models.ScoreResult{
		SimilarityScore:  score,
		Hint:             hint,
		CategoryMatch:    s.categories.SameCategory(ctx, pair.Input, pair.Answer),
		Breakdown:        breakdown,
		ProcessingTimeMs: elapsedMs(start),
	}, nil
}

func (s *Service) validate(pair models.WordPair) error {
	if err := s.validateWord("user_input", pair.Input); err != nil {
		return err
	}
	return s.validateWord("answer", pair.Answer)
}

func (s *Service) validateWord(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(value) > s.maxInputLen {
		return &ValidationError{Field: field, Reason: "exceeds maximum length"}
	}
	return nil
}

func elapsedMs(start time.Time) float64 {
	return round2(float64(time.Since(start).Microseconds()) / 1000)
}
