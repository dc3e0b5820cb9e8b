package db

import (
	"context"
	"fmt"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// entryRow mirrors a diary_entry record as returned by SELECT.
type entryRow struct {
	EntryID   string `json:"entry_id"`
	UserID    string `json:"user_id"`
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}

// moodRow mirrors a mood_point record as returned by SELECT.
type moodRow struct {
	UserID string  `json:"user_id"`
	Date   string  `json:"date"`
	Score  float64 `json:"score"`
}

// QueryCreateEntry persists a diary entry under the given record id. The id
// and timestamp are generated by the caller so all backends share the same
// contract.
func (c *Client) QueryCreateEntry(ctx context.Context, id, userID, summary, timestamp string) error {
	_, err := surrealdb.Query[any](ctx, c.db, `
		CREATE type::record("diary_entry", $id) CONTENT {
			user_id: $user_id,
			summary: $summary,
			timestamp: $timestamp
		}
	`, map[string]any{
		"id":        id,
		"user_id":   userID,
		"summary":   summary,
		"timestamp": timestamp,
	})
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// QueryListEntries returns a user's diary entries in creation order.
func (c *Client) QueryListEntries(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	results, err := surrealdb.Query[[]entryRow](ctx, c.db, `
		SELECT <string>record::id(id) AS entry_id, user_id, summary, timestamp
		FROM diary_entry
		WHERE user_id = $user_id
		ORDER BY created ASC
	`, map[string]any{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.DiaryEntry{}, nil
	}

	rows := (*results)[0].Result
	entries := make([]models.DiaryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.DiaryEntry{
			ID:        row.EntryID,
			Summary:   row.Summary,
			Timestamp: row.Timestamp,
		})
	}
	return entries, nil
}

// QueryAppendMoodPoint persists a mood sample for a user.
func (c *Client) QueryAppendMoodPoint(ctx context.Context, userID, dateISO string, score float64) error {
	_, err := surrealdb.Query[any](ctx, c.db, `
		CREATE mood_point CONTENT {
			user_id: $user_id,
			date: $date,
			score: $score
		}
	`, map[string]any{
		"user_id": userID,
		"date":    dateISO,
		"score":   score,
	})
	if err != nil {
		return fmt.Errorf("append mood point: %w", err)
	}
	return nil
}

// QueryListMoodPoints returns a user's mood timeline in creation order.
func (c *Client) QueryListMoodPoints(ctx context.Context, userID string) ([]models.MoodPoint, error) {
	results, err := surrealdb.Query[[]moodRow](ctx, c.db, `
		SELECT user_id, date, score
		FROM mood_point
		WHERE user_id = $user_id
		ORDER BY created ASC
	`, map[string]any{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list mood points: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.MoodPoint{}, nil
	}

	rows := (*results)[0].Result
	points := make([]models.MoodPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, models.MoodPoint{Date: row.Date, Score: row.Score})
	}
	return points, nil
}
