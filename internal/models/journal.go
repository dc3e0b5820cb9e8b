package models

// SummaryResult is the structured diary summary derived from raw text.
type SummaryResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
}

// DiaryEntry is a persisted, user-scoped summary record. Entries are
// append-only and never mutated after creation.
type DiaryEntry struct {
	ID        string `json:"entry_id"`
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}

// Event is the assembled output record merging summary, persistence metadata
// and optional mood data. Date and Time are derived from the same instant.
// The mood fields are present only when a SentimentResult was supplied to
// the assembler.
type Event struct {
	Date           string   `json:"date"`
	Title          string   `json:"title"`
	Time           string   `json:"time"`
	Description    string   `json:"description"`
	EntryID        string   `json:"entry_id"`
	Timestamp      string   `json:"timestamp"`
	EmojiPath      string   `json:"emoji_path,omitempty"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	MoodLabel      string   `json:"mood_label,omitempty"`
}
