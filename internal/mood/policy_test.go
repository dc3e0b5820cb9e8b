package mood

import (
	"testing"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTieredPolicyMatchesClassify(t *testing.T) {
	policy := TieredPolicy{}

	inputs := []string{
		"I want to die",
		"stress everywhere",
		"feeling glad",
		"plain text",
		"",
	}
	for _, text := range inputs {
		emoji, label := policy.Evaluate(text)
		result := Classify(text)
		assert.Equal(t, result.EmojiPath, emoji, "input %q", text)
		assert.Equal(t, result.MoodLabel, label, "input %q", text)
	}
}

func TestFrequencyPolicy(t *testing.T) {
	policy := FrequencyPolicy{}

	tests := []struct {
		name  string
		text  string
		emoji string
		label string
	}{
		{
			name:  "single positive word decides",
			text:  "that movie was brilliant",
			emoji: models.EmojiGood,
			label: models.MoodPositive,
		},
		{
			name:  "majority negative",
			text:  "terrible awful day, though lunch was good",
			emoji: models.EmojiBad,
			label: models.MoodNegative,
		},
		{
			name:  "tie is moderate",
			text:  "it was good but also bad",
			emoji: models.EmojiModerate,
			label: models.MoodNeutral,
		},
		{
			name:  "no matches",
			text:  "the meeting starts at nine",
			emoji: models.EmojiModerate,
			label: models.MoodNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emoji, label := policy.Evaluate(tt.text)
			assert.Equal(t, tt.emoji, emoji)
			assert.Equal(t, tt.label, label)
		})
	}
}

// The two policies disagree on purpose: "wonderful" is only in the expanded
// lexicon, so the tiered policy scores it neutral while the frequency policy
// calls it positive. Call-paths must never mix them.
func TestPoliciesAreDistinct(t *testing.T) {
	text := "what a wonderful evening"

	tieredEmoji, tieredLabel := TieredPolicy{}.Evaluate(text)
	freqEmoji, freqLabel := FrequencyPolicy{}.Evaluate(text)

	assert.Equal(t, models.EmojiModerate, tieredEmoji)
	assert.Equal(t, models.MoodNeutral, tieredLabel)
	assert.Equal(t, models.EmojiGood, freqEmoji)
	assert.Equal(t, models.MoodPositive, freqLabel)
}
