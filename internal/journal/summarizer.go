// Package journal derives structured diary summaries from raw text.
package journal

import (
	"fmt"
	"strings"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// maxSummaryLen is the hard limit on the whitespace-normalized summary.
const maxSummaryLen = 240

// longTextThreshold switches the description to the reflective template.
const longTextThreshold = 200

// titleCategory pairs a keyword list with the title it selects.
type titleCategory struct {
	keywords []string
	title    string
}

// titleTable is checked in order; the first category with a matching keyword
// wins. Keep this order: happy before study before sad before work before
// tired.
var titleTable = []titleCategory{
	{[]string{"happy", "joy", "excited", "great", "awesome"}, "Happy Day"},
	{[]string{"study", "learn", "class", "homework", "exam"}, "Study Day"},
	{[]string{"sad", "upset", "disappointed", "frustrated"}, "Tough Day"},
	{[]string{"work", "meeting", "project", "deadline"}, "Work Day"},
	{[]string{"tired", "exhausted", "busy", "stressed"}, "Busy Day"},
}

// defaultTitle is used when no category matches.
const defaultTitle = "Daily Reflection"

// Summarize maps raw text to a title, first-person description and a bounded
// summary. Pure, total and deterministic.
func Summarize(text string) models.SummaryResult {
	return models.SummaryResult{
		Title:       titleFor(text),
		Description: describe(text),
		Summary:     normalize(text),
	}
}

// titleFor selects a title from the category table by first keyword match.
func titleFor(text string) string {
	t := strings.ToLower(text)
	for _, cat := range titleTable {
		for _, kw := range cat.keywords {
			if strings.Contains(t, kw) {
				return cat.title
			}
		}
	}
	return defaultTitle
}

// describe produces the first-person diary description. Long input gets the
// reflective template with a 100-byte excerpt.
func describe(text string) string {
	if len(text) > longTextThreshold {
		return fmt.Sprintf("Today I reflected on my experiences. %s... It was meaningful to process these thoughts.", text[:100])
	}
	return fmt.Sprintf("I spent time today thinking about my day. %s", text)
}

// normalize collapses whitespace runs to single spaces, trims the ends, and
// hard-truncates to 240 bytes with an ellipsis marker.
func normalize(text string) string {
	s := strings.Join(strings.Fields(text), " ")
	if len(s) > maxSummaryLen {
		return s[:maxSummaryLen-3] + "..."
	}
	return s
}
