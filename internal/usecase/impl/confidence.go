package impl

// Confidence scoring for machine-translated text. The score is a heuristic
// in [0.30, 0.95] the chat surface uses to decide whether to offer a
// "low confidence, retry?" affordance. It is recomputed on every call and
// never persisted.

const (
	confidenceBase = 0.85
	confidenceMin  = 0.30
	confidenceMax  = 0.95
)

// highConfidencePairs are language pairs the backend handles well, checked
// in either direction.
var highConfidencePairs = map[[2]string]struct{}{
	{"en", "hi"}: {},
	{"en", "bn"}: {},
	{"hi", "ur"}: {},
}

// ScoreConfidence computes the heuristic confidence for one translation.
// Adjustments accumulate from the base in any order; only the final clamp
// bounds the result.
func ScoreConfidence(original, translated, fromLang, toLang string) float64 {
	score := confidenceBase

	// Short text skews accurate; long text accumulates drift.
	if len(original) < 10 {
		score += 0.10
	}
	if len(original) > 100 {
		score -= 0.10
	}

	// Numbers survive translation well.
	if containsDigit(original) {
		score += 0.05
	}

	if isHighConfidencePair(fromLang, toLang) {
		score += 0.05
	}

	// Identical output for a cross-language request is almost certainly a
	// failed or no-op translation.
	if translated == original && fromLang != toLang {
		score -= 0.30
	}

	// Suspicious length ratios.
	if float64(len(translated)) < 0.3*float64(len(original)) {
		score -= 0.20
	}
	if len(translated) > 3*len(original) {
		score -= 0.10
	}

	if score < confidenceMin {
		return confidenceMin
	}
	if score > confidenceMax {
		return confidenceMax
	}

	return score
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}

	return false
}

func isHighConfidencePair(fromLang, toLang string) bool {
	if _, ok := highConfidencePairs[[2]string{fromLang, toLang}]; ok {
		return true
	}
	_, ok := highConfidencePairs[[2]string{toLang, fromLang}]

	return ok
}
