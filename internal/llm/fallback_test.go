package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackReplyRouting(t *testing.T) {
	tests := []struct {
		name         string
		conversation string
		want         string
	}{
		{"happy keyword", "I'm so happy today!", fallbackHappy},
		{"happy uppercase", "WONDERFUL news everyone", fallbackHappy},
		{"tough keyword", "I'm really worried about tomorrow", fallbackTough},
		{"effort keyword", "Spent all evening on the project", fallbackEffort},
		{"no keyword", "The weather changed around noon", fallbackDefault},
		{"empty input", "", fallbackDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackReply(tt.conversation))
		})
	}
}

// Happy wins over tough, tough wins over effort.
func TestFallbackReplyBucketOrder(t *testing.T) {
	assert.Equal(t, fallbackHappy, FallbackReply("happy but also stressed"))
	assert.Equal(t, fallbackTough, FallbackReply("stressed about the exam"))
}

func TestFallbackReplyIsTotal(t *testing.T) {
	for _, input := range []string{"", " ", "!!!", "9000"} {
		assert.NotEmpty(t, FallbackReply(input))
	}
}
