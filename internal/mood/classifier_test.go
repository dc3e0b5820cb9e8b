package mood

import (
	"math"
	"testing"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTiers(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		score     float64
		label     string
		emoji     string
		emotions  []string
	}{
		{
			name:     "crisis phrase",
			text:     "I want to die",
			score:    -0.95,
			label:    models.MoodNegative,
			emoji:    models.EmojiBad,
			emotions: []string{"sadness"},
		},
		{
			name:     "crisis wins over positive",
			text:     "I'm so happy but sometimes I want to die",
			score:    -0.95,
			label:    models.MoodNegative,
			emoji:    models.EmojiBad,
			emotions: []string{"sadness"},
		},
		{
			name:     "negative word",
			text:     "Today was full of stress and I felt anxious",
			score:    -0.6,
			label:    models.MoodNegative,
			emoji:    models.EmojiBad,
			emotions: []string{"sadness"},
		},
		{
			name:     "negative wins over positive",
			text:     "I was happy this morning but now I'm depressed",
			score:    -0.6,
			label:    models.MoodNegative,
			emoji:    models.EmojiBad,
			emotions: []string{"sadness"},
		},
		{
			name:     "positive word",
			text:     "That was awesome, I'm so glad",
			score:    0.7,
			label:    models.MoodPositive,
			emoji:    models.EmojiGood,
			emotions: []string{"happiness"},
		},
		{
			name:     "case insensitive",
			text:     "I AM SO HAPPY TODAY",
			score:    0.7,
			label:    models.MoodPositive,
			emoji:    models.EmojiGood,
			emotions: []string{"happiness"},
		},
		{
			name:     "no keywords",
			text:     "I went to the store and bought some bread",
			score:    0.0,
			label:    models.MoodNeutral,
			emoji:    models.EmojiModerate,
			emotions: []string{"neutral"},
		},
		{
			name:     "empty input",
			text:     "",
			score:    0.0,
			label:    models.MoodNeutral,
			emoji:    models.EmojiModerate,
			emotions: []string{"neutral"},
		},
		{
			name:     "whitespace only",
			text:     "   \n\t  ",
			score:    0.0,
			label:    models.MoodNeutral,
			emoji:    models.EmojiModerate,
			emotions: []string{"neutral"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.text)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.label, result.MoodLabel)
			assert.Equal(t, tt.emoji, result.EmojiPath)
			assert.Equal(t, tt.emotions, result.Emotions)
		})
	}
}

func TestClassifyIntensityEqualsAbsScore(t *testing.T) {
	inputs := []string{
		"I want to die",
		"feeling depressed",
		"so happy today",
		"nothing special",
		"",
	}
	for _, text := range inputs {
		result := Classify(text)
		assert.Equal(t, math.Abs(result.Score), result.Intensity, "input %q", text)
	}
}

func TestClassifyCrisisScenario(t *testing.T) {
	result := Classify("I'm glad you asked but honestly I want to die")

	assert.Equal(t, -0.95, result.Score)
	assert.Equal(t, 0.95, result.Intensity)
	assert.Equal(t, models.MoodNegative, result.MoodLabel)
	assert.Equal(t, models.EmojiBad, result.EmojiPath)
}

// Labels and emoji tokens must always agree: positive iff the good token,
// negative iff the bad token.
func TestClassifyThresholdConsistency(t *testing.T) {
	inputs := []string{
		"suicide",
		"sad",
		"happy",
		"a perfectly ordinary afternoon",
	}
	for _, text := range inputs {
		result := Classify(text)
		switch result.MoodLabel {
		case models.MoodPositive:
			assert.Equal(t, models.EmojiGood, result.EmojiPath)
			assert.GreaterOrEqual(t, result.Score, 0.5)
		case models.MoodNegative:
			assert.Equal(t, models.EmojiBad, result.EmojiPath)
			assert.LessOrEqual(t, result.Score, -0.5)
		default:
			assert.Equal(t, models.EmojiModerate, result.EmojiPath)
			assert.Greater(t, result.Score, -0.5)
			assert.Less(t, result.Score, 0.5)
		}
	}
}
