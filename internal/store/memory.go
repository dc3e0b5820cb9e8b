package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/raphaelgruber/beingbuddy-go/internal/models"
)

// MemoryRepository keeps all records in process memory. Appends to the same
// user's sequence are serialized by the mutex so concurrent requests cannot
// lose updates. Everything is lost on restart.
type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string][]models.DiaryEntry
	moods   map[string][]models.MoodPoint
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries: make(map[string][]models.DiaryEntry),
		moods:   make(map[string][]models.MoodPoint),
	}
}

// SaveEntry appends a new diary entry for the user. Never fails.
func (r *MemoryRepository) SaveEntry(_ context.Context, userID, summary string) (models.DiaryEntry, error) {
	entry := models.DiaryEntry{
		ID:        uuid.NewString(),
		Summary:   summary,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}

	r.mu.Lock()
	r.entries[userID] = append(r.entries[userID], entry)
	r.mu.Unlock()

	return entry, nil
}

// ListEntries returns a copy of the user's entries in insertion order.
func (r *MemoryRepository) ListEntries(_ context.Context, userID string) ([]models.DiaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]models.DiaryEntry, len(r.entries[userID]))
	copy(entries, r.entries[userID])
	return entries, nil
}

// AppendMoodPoint appends a mood sample for the user. Never fails.
func (r *MemoryRepository) AppendMoodPoint(_ context.Context, userID, dateISO string, score float64) error {
	r.mu.Lock()
	r.moods[userID] = append(r.moods[userID], models.MoodPoint{Date: dateISO, Score: score})
	r.mu.Unlock()
	return nil
}

// ListMoodPoints returns a copy of the user's mood timeline in insertion order.
func (r *MemoryRepository) ListMoodPoints(_ context.Context, userID string) ([]models.MoodPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]models.MoodPoint, len(r.moods[userID]))
	copy(points, r.moods[userID])
	return points, nil
}
