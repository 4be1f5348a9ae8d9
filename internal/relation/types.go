package relation

// Pattern identifies how a guessed word relates to the answer word.
// The declaration order is fixed and meaningful: when two patterns tie on
// entailment probability, the earlier declared pattern wins.
type Pattern int

const (
	PatternSituation    Pattern = iota // 상황발생
	PatternEmotionCause                // 감정원인
	PatternAttribute                   // 속성관계
	PatternPersonal                    // 사람관계
	PatternSameGenre                   // 유사장르
	PatternOpposite                    // 반대관계
	PatternPlace                       // 장소관계
	PatternTemporal                    // 시간관계
	PatternPartWhole                   // 부분전체
	PatternOutcome                     // 결과관계
)

// NumPatterns is the size of the closed pattern set.
const NumPatterns = 10

var patternNames = [NumPatterns]string{
	"상황발생",
	"감정원인",
	"속성관계",
	"사람관계",
	"유사장르",
	"반대관계",
	"장소관계",
	"시간관계",
	"부분전체",
	"결과관계",
}

// Valid reports whether p is a member of the closed pattern set.
func (p Pattern) Valid() bool {
	return p >= 0 && p < NumPatterns
}

func (p Pattern) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return patternNames[p]
}

// Template pairs a pattern's NLI probe frame with its hint frame.
// Probes reference both {input} and {answer}; hints reference {input} only.
type Template struct {
	Probe string
	Hint  string
}

// Verdict is the classifier outcome for one word pair.
type Verdict struct {
	// Pattern is the best supported relation pattern.
	Pattern Pattern
	// Confidence is the maximum normalized entailment probability across
	// the pattern probes.
	Confidence float64
	// Relational is the relational similarity signal in [0,1].
	Relational float64
	// Contradiction is the antonym/opposition signal in [0,1].
	Contradiction float64
}
