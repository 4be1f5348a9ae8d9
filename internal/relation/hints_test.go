package relation

import (
	"strings"
	"testing"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/pkg/models"
)

func hintTemplates() []Template {
	patterns := testPatterns()
	patterns[PatternPersonal].Hint = "{input} 사이에서 나타나는 것이에요"
	patterns[PatternSameGenre].Hint = "{input}와 비슷한 방식으로 진행되는 것이에요"
	return patterns
}

var testThresholds = []ThresholdHint{
	{Min: 0, Text: "전혀 다른 방향이에요."},
	{Min: 80, Text: "아주 가까워요!"},
	{Min: 40, Text: "관련이 있지만 정확하지 않아요."},
}

var testSuffixes = DetailSuffixes{
	SemanticHigh:   "의미적으로 매우 가까워요",
	RelationalHigh: "맥락이나 상황은 정확해요",
	FormativeHigh:  "철자가 거의 비슷해요",
	Contradiction:  "하지만 정반대 의미는 아니에요",
}

func newTestGenerator() *HintGenerator {
	return NewHintGenerator(hintTemplates(), testThresholds, testSuffixes)
}

func TestRender_FillsAnchorWord(t *testing.T) {
	g := newTestGenerator()

	got := g.Render(Verdict{Pattern: PatternPersonal}, "친구")
	want := "친구 사이에서 나타나는 것이에요"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = g.Render(Verdict{Pattern: PatternSameGenre}, "마피아")
	want = "마피아와 비슷한 방식으로 진행되는 것이에요"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_UnknownPatternPanics(t *testing.T) {
	g := newTestGenerator()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for pattern outside the closed set")
		}
	}()
	g.Render(Verdict{Pattern: Pattern(99)}, "친구")
}

func TestGenerate_ContextualHint(t *testing.T) {
	g := newTestGenerator()

	verdict := Verdict{Pattern: PatternPersonal, Confidence: 0.82}
	breakdown := models.Breakdown{Semantic: 0.62, Relational: 0.38, Formative: 0.15, Contradiction: 0.05}

	got := g.Generate(verdict, "친구", 45.32, breakdown)
	want := "친구 사이에서 나타나는 것이에요"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_LowConfidenceFallsBack(t *testing.T) {
	g := newTestGenerator()

	verdict := Verdict{Pattern: PatternPersonal, Confidence: 0.1}
	got := g.Generate(verdict, "친구", 45.0, models.Breakdown{Semantic: 0.4, Relational: 0.4, Formative: 0.3})
	if got != "관련이 있지만 정확하지 않아요." {
		t.Errorf("expected score-bracket fallback, got %q", got)
	}
}

func TestGenerate_LowScoreFallsBack(t *testing.T) {
	g := newTestGenerator()

	verdict := Verdict{Pattern: PatternPersonal, Confidence: 0.9}
	got := g.Generate(verdict, "친구", 10.0, models.Breakdown{Semantic: 0.1, Relational: 0.1, Formative: 0.1})
	if got != "전혀 다른 방향이에요." {
		t.Errorf("expected lowest score bracket, got %q", got)
	}
}

func TestGenerate_ContradictionSuffix(t *testing.T) {
	g := newTestGenerator()

	verdict := Verdict{Pattern: PatternSameGenre, Confidence: 0.8}
	breakdown := models.Breakdown{Semantic: 0.7, Relational: 0.7, Formative: 0.3, Contradiction: 0.8}

	got := g.Generate(verdict, "행복", 65.0, breakdown)
	if !strings.HasSuffix(got, testSuffixes.Contradiction) {
		t.Errorf("expected contradiction suffix, got %q", got)
	}
	if !strings.HasPrefix(got, "행복와 비슷한 방식으로") {
		t.Errorf("expected contextual hint first, got %q", got)
	}
}

func TestGenerate_FormativeSuffix(t *testing.T) {
	g := newTestGenerator()

	// A near-typo: formative dominates with high confidence and score.
	verdict := Verdict{Pattern: PatternSameGenre, Confidence: 0.8}
	breakdown := models.Breakdown{Semantic: 0.2, Relational: 0.1, Formative: 0.9}

	got := g.Generate(verdict, "사과", 70.0, breakdown)
	want := "사과와 비슷한 방식으로 진행되는 것이에요. 철자가 거의 비슷해요"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGenerate_NoSuffixBelowSixty(t *testing.T) {
	g := newTestGenerator()

	verdict := Verdict{Pattern: PatternPersonal, Confidence: 0.8}
	breakdown := models.Breakdown{Semantic: 0.2, Relational: 0.1, Formative: 0.9}

	got := g.Generate(verdict, "사과", 45.0, breakdown)
	if strings.Contains(got, testSuffixes.FormativeHigh) {
		t.Errorf("suffix should not be appended below score 60, got %q", got)
	}
}

func TestBaseHint_Brackets(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		score float64
		want  string
	}{
		{95, "아주 가까워요!"},
		{80, "아주 가까워요!"},
		{55, "관련이 있지만 정확하지 않아요."},
		{5, "전혀 다른 방향이에요."},
	}
	for _, tt := range tests {
		if got := g.baseHint(tt.score); got != tt.want {
			t.Errorf("baseHint(%f): expected %q, got %q", tt.score, tt.want, got)
		}
	}
}

func TestPattern_String(t *testing.T) {
	if PatternPersonal.String() != "사람관계" {
		t.Errorf("expected 사람관계, got %s", PatternPersonal)
	}
	if PatternSituation.String() != "상황발생" {
		t.Errorf("expected 상황발생, got %s", PatternSituation)
	}
	if Pattern(42).String() != "unknown" {
		t.Errorf("expected unknown for out-of-range pattern")
	}
	if Pattern(42).Valid() {
		t.Error("expected Pattern(42) to be invalid")
	}
}
