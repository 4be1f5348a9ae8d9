package relation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/pkg/models"
)

// ThresholdHint maps a minimum score to a fallback hint line.
type ThresholdHint struct {
	Min  float64
	Text string
}

// DetailSuffixes are short follow-up hints appended when one signal clearly
// dominates the breakdown.
type DetailSuffixes struct {
	SemanticHigh   string
	RelationalHigh string
	FormativeHigh  string
	Contradiction  string
}

// Confidence and score floors below which the contextual pattern hint is
// replaced by a score-bracket fallback.
const (
	minHintConfidence = 0.3
	minHintScore      = 15
)

// HintGenerator renders Korean hints describing how a guess relates to the
// answer, anchored on the guessed word.
type HintGenerator struct {
	templates  []Template // indexed by Pattern declaration order
	thresholds []ThresholdHint
	suffixes   DetailSuffixes
}

// NewHintGenerator creates a generator over the given hint templates. The
// templates slice must hold one entry per Pattern, in declaration order;
// callers validate this at startup.
func NewHintGenerator(templates []Template, thresholds []ThresholdHint, suffixes DetailSuffixes) *HintGenerator {
	sorted := make([]ThresholdHint, len(thresholds))
	copy(sorted, thresholds)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Min > sorted[j].Min
	})

	return &HintGenerator{
		templates:  templates,
		thresholds: sorted,
		suffixes:   suffixes,
	}
}

// Render fills the hint template for the verdict's pattern with the guessed
// word, verbatim. The pattern set is closed, so a pattern without a template
// is a programming defect, not a recoverable condition.
func (g *HintGenerator) Render(v Verdict, input string) string {
	if int(v.Pattern) < 0 || int(v.Pattern) >= len(g.templates) {
		panic(fmt.Sprintf("relation: no hint template for pattern %d", v.Pattern))
	}
	return strings.ReplaceAll(g.templates[v.Pattern].Hint, "{input}", input)
}

// Generate composes the user-facing hint for a scored pair: the contextual
// pattern hint when the classification is confident enough, otherwise a
// score-bracket fallback, either one optionally followed by a dominant-signal
// suffix.
func (g *HintGenerator) Generate(v Verdict, input string, score float64, b models.Breakdown) string {
	detail := g.detailHint(b, score)

	if v.Confidence >= minHintConfidence && score >= minHintScore {
		hint := g.Render(v, input)
		if detail != "" && score >= 60 {
			return hint + ". " + detail
		}
		return hint
	}

	base := g.baseHint(score)
	if detail != "" {
		return base + " " + detail
	}
	return base
}

func (g *HintGenerator) baseHint(score float64) string {
	for _, t := range g.thresholds {
		if score >= t.Min {
			return t.Text
		}
	}
	return g.thresholds[len(g.thresholds)-1].Text
}

func (g *HintGenerator) detailHint(b models.Breakdown, score float64) string {
	if b.Contradiction > 0.6 {
		return g.suffixes.Contradiction
	}
	if score < 20 {
		return ""
	}

	switch {
	case b.Semantic >= b.Relational && b.Semantic >= b.Formative:
		if b.Semantic > 0.6 && b.Relational < 0.3 {
			return g.suffixes.SemanticHigh
		}
	case b.Relational >= b.Formative:
		if b.Relational > 0.6 && b.Semantic < 0.3 {
			return g.suffixes.RelationalHigh
		}
	default:
		if b.Formative > 0.7 {
			return g.suffixes.FormativeHigh
		}
	}
	return ""
}
