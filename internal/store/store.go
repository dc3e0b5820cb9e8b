// Package store persists user-scoped diary entries and mood timelines behind
// a repository abstraction so the in-memory default can be swapped for a
// durable backend without touching the analysis pipeline.
package store

import (
	"context"
	"errors"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// ErrPersistence indicates a storage backend failure. Assembly aborts without
// partial persistence when this is returned. Check with errors.Is().
var ErrPersistence = errors.New("persistence failure")

// Repository stores diary entries and mood points per user. Appends preserve
// call order for a single user and never remove or reorder prior records.
type Repository interface {
	// SaveEntry appends a new diary entry with a fresh id and UTC timestamp.
	SaveEntry(ctx context.Context, userID, summary string) (models.DiaryEntry, error)

	// ListEntries returns the user's entries in insertion order.
	ListEntries(ctx context.Context, userID string) ([]models.DiaryEntry, error)

	// AppendMoodPoint appends a (date, score) sample to the user's timeline.
	AppendMoodPoint(ctx context.Context, userID, dateISO string, score float64) error

	// ListMoodPoints returns the user's mood timeline in insertion order.
	ListMoodPoints(ctx context.Context, userID string) ([]models.MoodPoint, error)
}
