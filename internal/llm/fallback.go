package llm

import "strings"

// Keyword buckets that route the deterministic fallback reply. Checked in
// order, first match wins.
var (
	fallbackHappyWords  = []string{"happy", "great", "wonderful", "amazing", "excited"}
	fallbackToughWords  = []string{"sad", "upset", "difficult", "tough", "stressed", "worried"}
	fallbackEffortWords = []string{"study", "exam", "school", "work", "project"}
)

// Canned supportive replies used when the generative model is unavailable.
const (
	fallbackHappy = "That's wonderful to hear! It sounds like you're having a really positive experience. I'm so happy for you and I'd love to hear more about what made your day so special."

	fallbackTough = "I can hear that you're going through something challenging right now. It takes courage to share these feelings, and I want you to know that I'm here to listen and support you. Your feelings are completely valid."

	fallbackEffort = "It sounds like you're putting in a lot of effort with your responsibilities. That kind of dedication is really admirable. How are you feeling about everything you're working on?"

	fallbackDefault = "Thank you for sharing that with me. I can tell this is something that's on your mind, and I appreciate you trusting me with your thoughts. I'm here to listen and support you however I can."
)

// FallbackReply returns a deterministic supportive reply chosen by keyword
// routing. It is total: every input gets a reply.
func FallbackReply(conversation string) string {
	t := strings.ToLower(conversation)

	switch {
	case matchesAny(t, fallbackHappyWords):
		return fallbackHappy
	case matchesAny(t, fallbackToughWords):
		return fallbackTough
	case matchesAny(t, fallbackEffortWords):
		return fallbackEffort
	default:
		return fallbackDefault
	}
}

func matchesAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
