package scoring

import (
	"math"

	"github.com/JBNU-Cloud-Computing-Project/Similarity/internal/config"
	"github.com/JBNU-Cloud-Computing-Project/Similarity/pkg/models"
)

// Aggregate blends the signal breakdown into a final score in [0,100].
// The contradiction signal acts as a multiplicative dampener, not a
// subtractive penalty: a fully contradictory pair trends to zero no matter
// how much semantic or formative overlap it has.
func Aggregate(b models.Breakdown, w config.Weights) float64 {
	raw := w.Semantic*b.Semantic + w.Relational*b.Relational + w.Formative*b.Formative
	adjusted := raw * (1 - b.Contradiction)

	score := adjusted * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round2(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
