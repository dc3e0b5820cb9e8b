// Package buddy assembles the deterministic analysis pipeline: summarize,
// persist, classify, and merge into a single Event record.
package buddy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raphaelgruber/beingbuddy-go/internal/journal"
	"github.com/raphaelgruber/beingbuddy-go/internal/metrics"
	"github.com/raphaelgruber/beingbuddy-go/internal/models"
	"github.com/raphaelgruber/beingbuddy-go/internal/mood"
	"github.com/raphaelgruber/beingbuddy-go/internal/store"
)

// clockTimeLayout renders the human-readable Event time, e.g. "03:27 PM".
const clockTimeLayout = "03:04 PM"

// Service runs the analysis pipeline against a repository.
type Service struct {
	repo      store.Repository
	logger    *slog.Logger
	collector *metrics.Collector
}

// NewService creates the pipeline service. The collector may be nil.
func NewService(repo store.Repository, logger *slog.Logger, collector *metrics.Collector) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, collector: collector}
}

// Assemble summarizes text, persists exactly one diary entry for the user,
// and merges everything into an Event. Date and Time are derived from a
// single captured instant. If mood is non-nil its fields are copied into the
// Event, omitting any that are empty. On a store failure nothing
// half-assembled is returned.
func (s *Service) Assemble(ctx context.Context, text, userID string, sentiment *models.SentimentResult) (models.Event, error) {
	summary := s.summarize(text)

	start := time.Now()
	entry, err := s.repo.SaveEntry(ctx, userID, summary.Summary)
	s.record(metrics.OpDBSave, time.Since(start))
	if err != nil {
		return models.Event{}, fmt.Errorf("save entry: %w", err)
	}

	// One "now" read for both date and time to avoid skew across midnight.
	now := time.Now()

	event := models.Event{
		Date:        now.Format(time.RFC3339Nano),
		Title:       summary.Title,
		Time:        now.Format(clockTimeLayout),
		Description: summary.Description,
		EntryID:     entry.ID,
		Timestamp:   entry.Timestamp,
	}

	if sentiment != nil {
		event.EmojiPath = sentiment.EmojiPath
		score := sentiment.Score
		event.SentimentScore = &score
		event.MoodLabel = sentiment.MoodLabel
	}

	s.logger.Debug("event assembled", "user_id", userID, "entry_id", entry.ID, "title", event.Title)
	return event, nil
}

// Analyze classifies the text, assembles an Event carrying the mood fields,
// and logs a mood point dated at the Event's own instant.
func (s *Service) Analyze(ctx context.Context, text, userID string) (models.Event, models.SentimentResult, error) {
	start := time.Now()
	sentiment := mood.Classify(text)
	s.record(metrics.OpClassify, time.Since(start))

	event, err := s.Assemble(ctx, text, userID, &sentiment)
	if err != nil {
		return models.Event{}, models.SentimentResult{}, err
	}

	if err := s.repo.AppendMoodPoint(ctx, userID, event.Date, sentiment.Score); err != nil {
		// The entry is already persisted and the Event is complete; a failed
		// mood sample is not worth failing the request over.
		s.logger.Warn("failed to append mood point", "user_id", userID, "error", err)
	}

	return event, sentiment, nil
}

// Classify exposes the deterministic classifier with timing.
func (s *Service) Classify(text string) models.SentimentResult {
	start := time.Now()
	result := mood.Classify(text)
	s.record(metrics.OpClassify, time.Since(start))
	return result
}

// Entries lists a user's persisted diary entries.
func (s *Service) Entries(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	return s.repo.ListEntries(ctx, userID)
}

// MoodTimeline lists a user's mood points.
func (s *Service) MoodTimeline(ctx context.Context, userID string) ([]models.MoodPoint, error) {
	return s.repo.ListMoodPoints(ctx, userID)
}

func (s *Service) summarize(text string) models.SummaryResult {
	start := time.Now()
	summary := journal.Summarize(text)
	s.record(metrics.OpSummarize, time.Since(start))
	return summary
}

func (s *Service) record(op string, d time.Duration) {
	if s.collector != nil {
		s.collector.RecordTiming(op, d)
	}
}
