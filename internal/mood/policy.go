package mood

import (
	"strings"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// Policy maps raw text to an emoji token and a coarse mood label. Two
// incompatible policies exist; each call-path must use exactly one and never
// mix their thresholds.
type Policy interface {
	Name() string
	Evaluate(text string) (emojiPath, moodLabel string)
}

// TieredPolicy is the canonical policy: ordered keyword-tier scoring followed
// by the +-0.5 thresholds. Every production call-path uses this one.
type TieredPolicy struct{}

func (TieredPolicy) Name() string { return "tiered" }

func (TieredPolicy) Evaluate(text string) (string, string) {
	return labelForScore(scoreForText(text))
}

// Expanded lexicons used only by FrequencyPolicy.
var (
	frequencyPositive = []string{
		"happy", "joy", "excited", "great", "awesome", "wonderful", "amazing", "love", "good",
		"fantastic", "excellent", "perfect", "brilliant", "fun", "enjoyable", "pleasant",
		"delighted", "thrilled", "cheerful", "optimistic", "confident", "successful",
		"accomplished", "proud", "satisfied", "content", "peaceful", "relaxed",
	}
	frequencyNegative = []string{
		"sad", "upset", "angry", "frustrated", "terrible", "awful", "hate", "bad", "worried", "anxious",
		"depressed", "disappointed", "stressed", "overwhelmed", "hopeless", "miserable",
		"devastated", "heartbroken", "lonely", "scared", "fearful", "nervous", "irritated",
		"annoyed", "embarrassed", "ashamed", "guilty", "regret", "difficult", "tough", "hard",
	}
)

// FrequencyPolicy is the alternative word-frequency policy: count matches
// across the expanded lexicons, majority wins, ties are moderate. Retained as
// a documented variant of the original heuristic; no production call-path
// uses it.
type FrequencyPolicy struct{}

func (FrequencyPolicy) Name() string { return "frequency" }

func (FrequencyPolicy) Evaluate(text string) (string, string) {
	t := strings.ToLower(text)

	positive := countMatches(t, frequencyPositive)
	negative := countMatches(t, frequencyNegative)

	switch {
	case positive > negative && positive > 0:
		return models.EmojiGood, models.MoodPositive
	case negative > positive && negative > 0:
		return models.EmojiBad, models.MoodNegative
	default:
		return models.EmojiModerate, models.MoodNeutral
	}
}

// countMatches counts how many needles occur in s. Each distinct word counts
// once regardless of repetition, matching the original heuristic.
func countMatches(s string, needles []string) int {
	count := 0
	for _, n := range needles {
		if strings.Contains(s, n) {
			count++
		}
	}
	return count
}
