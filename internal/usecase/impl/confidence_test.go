package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConfidence_ShortTextWithGoodPairClampsToMax(t *testing.T) {
	// Base 0.85 plus short-text and pair bonuses exceeds the ceiling.
	score := ScoreConfidence("namaste", "hello", "hi", "en")
	assert.InDelta(t, 0.95, score, 1e-9)
}

func TestScoreConfidence_PairBonusWorksInBothDirections(t *testing.T) {
	forward := ScoreConfidence("what is the wheat rate", "गेहूं का भाव क्या है", "en", "hi")
	reverse := ScoreConfidence("गेहूं का भाव क्या है", "what is the wheat rate", "hi", "en")
	assert.InDelta(t, forward, reverse, 1e-9)
}

func TestScoreConfidence_IdenticalCrossLanguageOutputPenalized(t *testing.T) {
	text := "hello there trader, good morning"

	// Same output for a cross-language request reads as a failed translation.
	score := ScoreConfidence(text, text, "en", "fr")
	assert.InDelta(t, 0.55, score, 1e-9)

	// The same output for a same-language request carries no penalty.
	score = ScoreConfidence(text, text, "en", "en")
	assert.InDelta(t, 0.85, score, 1e-9)
}

func TestScoreConfidence_DigitsRaiseScore(t *testing.T) {
	withDigits := ScoreConfidence("price 1200 today", "aaj ka bhav 1200", "en", "fr")
	without := ScoreConfidence("price high today", "aaj bhav zyada hai", "en", "fr")
	assert.InDelta(t, 0.90, withDigits, 1e-9)
	assert.InDelta(t, 0.85, without, 1e-9)
}

func TestScoreConfidence_LongOriginalPenalized(t *testing.T) {
	original := strings.Repeat("the market was crowded today ", 5) // 145 chars
	translated := strings.Repeat("bazaar mein aaj bheed thi ", 5)

	score := ScoreConfidence(original, translated, "en", "fr")
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestScoreConfidence_SuspiciousTruncationPenalized(t *testing.T) {
	original := "the wholesale market closes early on every public holiday"
	translated := "band"

	score := ScoreConfidence(original, translated, "en", "fr")
	assert.InDelta(t, 0.65, score, 1e-9)
}

func TestScoreConfidence_SuspiciousExpansionPenalized(t *testing.T) {
	original := "rates are stable today"
	translated := strings.Repeat("x", len(original)*3+1)

	score := ScoreConfidence(original, translated, "en", "fr")
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestScoreConfidence_AlwaysWithinBounds(t *testing.T) {
	texts := []string{
		"",
		"hi",
		"price 42",
		"the market was busy",
		strings.Repeat("a very long sentence about commodity prices ", 10),
	}
	langs := []string{"en", "hi", "bn", "ur", "fr"}

	for _, original := range texts {
		for _, translated := range texts {
			for _, from := range langs {
				for _, to := range langs {
					score := ScoreConfidence(original, translated, from, to)
					assert.GreaterOrEqual(t, score, 0.30)
					assert.LessOrEqual(t, score, 0.95)
				}
			}
		}
	}
}
