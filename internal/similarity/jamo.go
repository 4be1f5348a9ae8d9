package similarity

// Unicode Hangul syllable composition. Each precomposed syllable in the
// U+AC00..U+D7A3 block decomposes arithmetically into a leading consonant,
// a vowel, and an optional trailing consonant.
const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3

	jamoLeadBase  = 0x1100 // choseong
	jamoVowelBase = 0x1161 // jungseong
	jamoTrailBase = 0x11A7 // jongseong (index 0 = none)

	vowelCount = 21
	trailCount = 28
)

// DecomposeJamo splits each Hangul syllable in s into its constituent jamo:
// leading consonant, vowel, and trailing consonant when present. Non-Hangul
// runes pass through as single atomic symbols.
func DecomposeJamo(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r < hangulBase || r > hangulLast {
			out = append(out, r)
			continue
		}
		idx := r - hangulBase
		lead := idx / (vowelCount * trailCount)
		vowel := (idx % (vowelCount * trailCount)) / trailCount
		trail := idx % trailCount

		out = append(out, jamoLeadBase+lead, jamoVowelBase+vowel)
		if trail > 0 {
			out = append(out, jamoTrailBase+trail)
		}
	}
	return out
}

// JamoScore measures the phonetic-structural similarity of two words as
// 1 - d/max(len), where d is the Levenshtein distance over the decomposed
// jamo sequences. The result is clamped to [0,1] and symmetric in its
// arguments. Two empty decompositions compare as identical (1.0).
func JamoScore(a, b string) float64 {
	ja := DecomposeJamo(a)
	jb := DecomposeJamo(b)

	maxLen := len(ja)
	if len(jb) > maxLen {
		maxLen = len(jb)
	}
	if maxLen == 0 {
		return 1.0
	}

	score := 1.0 - float64(levenshtein(ja, jb))/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// levenshtein computes the edit distance between two rune sequences with
// unit cost for insertion, deletion and substitution.
func levenshtein(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range a {
		curr[0] = i + 1
		for j, cb := range b {
			cost := 0
			if ca != cb {
				cost = 1
			}
			curr[j+1] = min3(prev[j+1]+1, curr[j]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
