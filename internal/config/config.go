package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/relation"
)

// Weights blend the three similarity signals. They must sum to 1.0.
type Weights struct {
	Semantic   float64
	Relational float64
	Formative  float64
}

// Config is the process-wide scoring configuration. It is loaded once at
// startup, validated, and never mutated afterwards; concurrent requests
// only read it.
type Config struct {
	Weights Weights

	// Patterns holds one (probe, hint) template pair per relation pattern,
	// in pattern declaration order.
	Patterns []relation.Template

	// RelationProbes feed the relational similarity signal.
	RelationProbes []string

	// ContradictionProbes feed the antonym dampener.
	ContradictionProbes []string

	// HintThresholds are fallback hints by score bracket, used when the
	// relation classification is not confident enough for a contextual hint.
	HintThresholds []relation.ThresholdHint

	DetailSuffixes relation.DetailSuffixes

	// ExactMatchHint is returned when the guess equals the answer.
	ExactMatchHint string

	// MaxInputLen bounds the rune length of each word.
	MaxInputLen int

	SemanticModel   string
	NLIModel        string
	TargetLatencyMs float64
}

const weightTolerance = 1e-9

// Default returns the built-in scoring configuration.
func Default() Config {
	return Config{
		Weights: Weights{
			Semantic:   0.50,
			Relational: 0.35,
			Formative:  0.15,
		},
		Patterns: []relation.Template{
			{ // 상황발생
				Probe: "{answer}는 {input} 상황에서 발생할 수 있다.",
				Hint:  "{input} 상황에서 나타나는 것이에요",
			},
			{ // 감정원인
				Probe: "{input}는 {answer}의 원인이 될 수 있다.",
				Hint:  "{input}에서 비롯되는 감정이나 행동이에요",
			},
			{ // 속성관계
				Probe: "{answer}는 {input}의 특성을 가지고 있다.",
				Hint:  "{input}의 성질을 가진 것이에요",
			},
			{ // 사람관계
				Probe: "{answer}는 {input} 사이에서 나타나는 것이다.",
				Hint:  "{input} 사이에서 나타나는 것이에요",
			},
			{ // 유사장르
				Probe: "{answer}는 {input}와 비슷한 종류다.",
				Hint:  "{input}와 비슷한 방식으로 진행되는 것이에요",
			},
			{ // 반대관계
				Probe: "{answer}는 {input}과 반대되는 것이다.",
				Hint:  "{input}과는 반대되는 개념이에요",
			},
			{ // 장소관계
				Probe: "{answer}는 {input}에서 일어나는 일이다.",
				Hint:  "{input}에서 경험할 수 있는 것이에요",
			},
			{ // 시간관계
				Probe: "{answer}는 {input} 때 일어나는 것이다.",
				Hint:  "{input} 시기에 일어나는 것이에요",
			},
			{ // 부분전체
				Probe: "{answer}는 {input}의 일부분이다.",
				Hint:  "{input}의 한 부분이에요",
			},
			{ // 결과관계
				Probe: "{answer}는 {input}의 결과로 생기는 것이다.",
				Hint:  "{input}의 결과로 나타나는 것이에요",
			},
		},
		RelationProbes: []string{
			"{input}은 {answer}과 관련이 있다.",
			"{input}는 {answer}와 같은 맥락에서 언급된다.",
			"{input}는 {answer}의 상황에서 나타날 수 있다.",
			"{input}와 {answer}는 비슷한 의미를 가진다.",
		},
		ContradictionProbes: []string{
			"{input}은 {answer}과 반대되는 의미다.",
			"{input}와 {answer}는 서로 상반된다.",
		},
		HintThresholds: []relation.ThresholdHint{
			{Min: 95, Text: "거의 정답이에요! 더 정확한 표현이 있어요."},
			{Min: 80, Text: "아주 가까워요! 조금만 더 생각해보세요."},
			{Min: 60, Text: "비슷한 방향이에요. 더 구체적으로 표현해보세요."},
			{Min: 40, Text: "관련이 있지만 정확하지 않아요."},
			{Min: 20, Text: "방향이 조금 다른 것 같아요."},
			{Min: 0, Text: "전혀 다른 방향이에요. 다시 생각해보세요."},
		},
		DetailSuffixes: relation.DetailSuffixes{
			SemanticHigh:   "의미적으로 매우 가까워요",
			RelationalHigh: "맥락이나 상황은 정확해요",
			FormativeHigh:  "철자가 거의 비슷해요",
			Contradiction:  "하지만 정반대 의미는 아니에요",
		},
		ExactMatchHint:  "정답과 완전히 동일한 단어예요!",
		MaxInputLen:     100,
		SemanticModel:   "sentence-transformers/paraphrase-multilingual-mpnet-base-v2",
		NLIModel:        "facebook/bart-large-mnli",
		TargetLatencyMs: 150,
	}
}

// Validate enforces the startup invariants. A violating configuration is a
// deployment defect: callers treat any error as fatal.
func (c Config) Validate() error {
	sum := c.Weights.Semantic + c.Weights.Relational + c.Weights.Formative
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("signal weights must sum to 1.0, got %.6f", sum)
	}
	if c.Weights.Semantic < 0 || c.Weights.Relational < 0 || c.Weights.Formative < 0 {
		return fmt.Errorf("signal weights must be non-negative")
	}

	if len(c.Patterns) != relation.NumPatterns {
		return fmt.Errorf("expected %d relation pattern templates, got %d", relation.NumPatterns, len(c.Patterns))
	}
	for i, t := range c.Patterns {
		p := relation.Pattern(i)
		if !strings.Contains(t.Probe, "{input}") || !strings.Contains(t.Probe, "{answer}") {
			return fmt.Errorf("pattern %s: probe template must reference {input} and {answer}", p)
		}
		if strings.Count(t.Hint, "{input}") != 1 {
			return fmt.Errorf("pattern %s: hint template must reference {input} exactly once", p)
		}
	}

	if len(c.RelationProbes) == 0 {
		return fmt.Errorf("at least one relational probe is required")
	}
	for i, probe := range c.RelationProbes {
		if !strings.Contains(probe, "{input}") || !strings.Contains(probe, "{answer}") {
			return fmt.Errorf("relational probe %d must reference {input} and {answer}", i)
		}
	}
	for i, probe := range c.ContradictionProbes {
		if !strings.Contains(probe, "{input}") || !strings.Contains(probe, "{answer}") {
			return fmt.Errorf("contradiction probe %d must reference {input} and {answer}", i)
		}
	}

	if len(c.HintThresholds) == 0 {
		return fmt.Errorf("at least one hint threshold is required")
	}
	if c.MaxInputLen <= 0 {
		return fmt.Errorf("max input length must be positive, got %d", c.MaxInputLen)
	}
	return nil
}
