// Package mood provides deterministic sentiment classification over free text.
package mood

import (
	"math"
	"strings"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// Keyword tiers in precedence order. The first tier with a match decides the
// score; later tiers are never consulted, so a crisis phrase always wins over
// any co-occurring positive word.
var (
	crisisPhrases = []string{"suicide", "kill myself", "i can't go on", "i want to die"}
	negativeWords = []string{"sad", "depressed", "unhappy", "anxious", "anxiety", "stress"}
	positiveWords = []string{"happy", "joy", "glad", "relieved", "awesome"}
)

// Scores assigned by each tier.
const (
	scoreCrisis   = -0.95
	scoreNegative = -0.6
	scorePositive = 0.7
)

// Classify maps raw text to a sentiment result. It is pure, total and
// deterministic: empty or unmatched input yields a neutral result, never an
// error.
func Classify(text string) models.SentimentResult {
	score := scoreForText(text)

	var emotions []string
	switch {
	case score < 0:
		emotions = []string{"sadness"}
	case score > 0:
		emotions = []string{"happiness"}
	default:
		emotions = []string{"neutral"}
	}

	emoji, label := labelForScore(score)

	return models.SentimentResult{
		Score:     score,
		Emotions:  emotions,
		Intensity: math.Abs(score),
		EmojiPath: emoji,
		MoodLabel: label,
	}
}

// scoreForText applies the ordered keyword tiers, first match wins.
func scoreForText(text string) float64 {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, crisisPhrases):
		return scoreCrisis
	case containsAny(t, negativeWords):
		return scoreNegative
	case containsAny(t, positiveWords):
		return scorePositive
	default:
		return 0.0
	}
}

// labelForScore applies the emoji/label thresholds. These are independent of
// the scoring tiers: score >= 0.5 is positive, score <= -0.5 is negative,
// anything in between is neutral.
func labelForScore(score float64) (emojiPath, moodLabel string) {
	switch {
	case score >= 0.5:
		return models.EmojiGood, models.MoodPositive
	case score <= -0.5:
		return models.EmojiBad, models.MoodNegative
	default:
		return models.EmojiModerate, models.MoodNeutral
	}
}

// containsAny reports whether s contains any of the given lowercase needles.
func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
