package models

// WordPair is one scoring request: the player's guess and the target answer.
type WordPair struct {
	Input  string `json:"user_input"`
	Answer string `json:"answer"`
}

// Breakdown holds the per-signal scores, each normalized to [0,1].
type Breakdown struct {
	Semantic      float64 `json:"semantic"`
	Relational    float64 `json:"relational"`
	Formative     float64 `json:"formative"`
	Contradiction float64 `json:"contradiction"`
}

// ScoreResult is the final response for one word pair.
type ScoreResult struct {
	SimilarityScore  float64   `json:"similarity_score"`
	Hint             string    `json:"hint"`
	CategoryMatch    bool      `json:"category_match"`
	Breakdown        Breakdown `json:"breakdown"`
	ProcessingTimeMs float64   `json:"processing_time_ms"`
}
