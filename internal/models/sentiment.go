// Package models defines data structures shared across the Being Buddy service.
package models

// Mood labels derived from sentiment score thresholds.
const (
	MoodPositive = "positive"
	MoodNegative = "negative"
	MoodNeutral  = "neutral"
)

// Emoji asset tokens returned to clients. The service only ever returns the
// identifier string; the client maps it to a presentation asset.
const (
	EmojiGood     = "assets/images/goodmood.png"
	EmojiBad      = "assets/images/badmood.png"
	EmojiModerate = "assets/images/moderatemode.png"
)

// SentimentResult is the outcome of classifying a piece of free text.
// Intensity always equals abs(Score).
type SentimentResult struct {
	Score     float64  `json:"score"`
	Emotions  []string `json:"emotions"`
	Intensity float64  `json:"intensity"`
	EmojiPath string   `json:"emoji_path"`
	MoodLabel string   `json:"mood_label"`
}

// MoodPoint is a single (date, score) sample on a user's mood timeline.
type MoodPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}
