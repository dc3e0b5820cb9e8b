package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/raphaelgruber/beingbuddy-go/internal/db"
	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// SurrealRepository persists entries in SurrealDB. Unlike the in-memory
// default it can fail; failures wrap ErrPersistence so callers abort assembly
// without partial persistence.
type SurrealRepository struct {
	client *db.Client
}

// NewSurrealRepository wraps an already-connected SurrealDB client.
func NewSurrealRepository(client *db.Client) *SurrealRepository {
	return &SurrealRepository{client: client}
}

// SaveEntry persists a new diary entry with a fresh id and UTC timestamp.
func (r *SurrealRepository) SaveEntry(ctx context.Context, userID, summary string) (models.DiaryEntry, error) {
	entry := models.DiaryEntry{
		ID:        uuid.NewString(),
		Summary:   summary,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := r.client.QueryCreateEntry(ctx, entry.ID, userID, entry.Summary, entry.Timestamp); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return entry, nil
}

// ListEntries returns the user's diary entries in creation order.
func (r *SurrealRepository) ListEntries(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	entries, err := r.client.QueryListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return entries, nil
}

// AppendMoodPoint persists a mood sample for the user.
func (r *SurrealRepository) AppendMoodPoint(ctx context.Context, userID, dateISO string, score float64) error {
	if err := r.client.QueryAppendMoodPoint(ctx, userID, dateISO, score); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ListMoodPoints returns the user's mood timeline in creation order.
func (r *SurrealRepository) ListMoodPoints(ctx context.Context, userID string) ([]models.MoodPoint, error) {
	points, err := r.client.QueryListMoodPoints(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return points, nil
}
