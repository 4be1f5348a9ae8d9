package relation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/nli"
)

// Entailer submits one premise/hypothesis pair to the entailment provider.
type Entailer interface {
	Entail(ctx context.Context, premise, hypothesis string) (nli.Scores, error)
}

// Classifier probes the entailment provider with a fixed battery of
// natural-language frames: one probe per relation pattern, a set of
// relational probes feeding the relational similarity signal, and a set of
// contradiction probes feeding the antonym dampener.
type Classifier struct {
	entailer            Entailer
	patterns            []Template // indexed by Pattern declaration order
	relationProbes      []string
	contradictionProbes []string
	maxConcurrent       int
}

const defaultMaxConcurrent = 8

// NewClassifier creates a classifier over the given probe battery. The
// patterns slice must hold one template per Pattern, in declaration order;
// callers validate this at startup.
func NewClassifier(entailer Entailer, patterns []Template, relationProbes, contradictionProbes []string, maxConcurrent int) *Classifier {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Classifier{
		entailer:            entailer,
		patterns:            patterns,
		relationProbes:      relationProbes,
		contradictionProbes: contradictionProbes,
		maxConcurrent:       maxConcurrent,
	}
}

// fill substitutes the word pair into a probe or hint template.
func fill(template, input, answer string) string {
	s := strings.ReplaceAll(template, "{input}", input)
	return strings.ReplaceAll(s, "{answer}", answer)
}

// premiseFor states the bare word pair; each probe is judged as a
// hypothesis against it.
func premiseFor(input, answer string) string {
	return fmt.Sprintf("'%s'와 '%s'가 함께 주어졌다.", input, answer)
}

// Classify evaluates every probe for the pair and reduces the results into
// a Verdict. All probes are independent and issued concurrently, bounded by
// the classifier's concurrency limit; probe order does not affect the
// outcome. Ties between patterns resolve to the earliest declared one.
func (c *Classifier) Classify(ctx context.Context, input, answer string) (Verdict, error) {
	premise := premiseFor(input, answer)

	hypotheses := make([]string, 0, len(c.patterns)+len(c.relationProbes)+len(c.contradictionProbes))
	for _, t := range c.patterns {
		hypotheses = append(hypotheses, fill(t.Probe, input, answer))
	}
	for _, probe := range c.relationProbes {
		hypotheses = append(hypotheses, fill(probe, input, answer))
	}
	for _, probe := range c.contradictionProbes {
		hypotheses = append(hypotheses, fill(probe, input, answer))
	}

	results := make([]nli.Scores, len(hypotheses))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, c.maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, h := range hypotheses {
		wg.Add(1)
		go func(idx int, hypothesis string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			scores, err := c.entailer.Entail(ctx, premise, hypothesis)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("probe %d: %w", idx, err)
					cancel()
				}
				return
			}
			results[idx] = scores
		}(i, h)
	}

	wg.Wait()

	if firstErr != nil {
		return Verdict{}, firstErr
	}

	patternScores := results[:len(c.patterns)]
	relationScores := results[len(c.patterns) : len(c.patterns)+len(c.relationProbes)]
	contradictionScores := results[len(c.patterns)+len(c.relationProbes):]

	verdict := Verdict{
		Relational:    meanGraded(relationScores),
		Contradiction: maxEntailment(contradictionScores),
	}
	verdict.Pattern, verdict.Confidence = bestPattern(patternScores)

	return verdict, nil
}

// bestPattern scans the pattern probe results in declaration order and keeps
// the strictly highest entailment score, so ties fall to the earliest
// declared pattern.
func bestPattern(scores []nli.Scores) (Pattern, float64) {
	best := PatternSituation
	bestScore := entailmentSignal(scores[0])
	for i := 1; i < len(scores); i++ {
		if s := entailmentSignal(scores[i]); s > bestScore {
			best = Pattern(i)
			bestScore = s
		}
	}
	return best, bestScore
}

// entailmentSignal counts a probe only when entailment dominates the label
// distribution.
func entailmentSignal(s nli.Scores) float64 {
	if s.Entailment >= s.Neutral && s.Entailment >= s.Contradiction {
		return s.Entailment
	}
	return 0
}

// gradedSignal maps a label distribution to a relational contribution:
// a dominant entailment counts fully, a dominant neutral counts half, and a
// dominant contradiction counts nothing.
func gradedSignal(s nli.Scores) float64 {
	switch {
	case s.Entailment >= s.Neutral && s.Entailment >= s.Contradiction:
		return s.Entailment
	case s.Neutral >= s.Contradiction:
		return s.Neutral * 0.5
	default:
		return 0
	}
}

func meanGraded(scores []nli.Scores) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += gradedSignal(s)
	}
	return sum / float64(len(scores))
}

func maxEntailment(scores []nli.Scores) float64 {
	var best float64
	for _, s := range scores {
		if v := entailmentSignal(s); v > best {
			best = v
		}
	}
	return best
}
