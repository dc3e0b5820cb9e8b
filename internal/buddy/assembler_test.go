package buddy

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/beingbuddy-go/internal/models"
	"github.com/raphaelgruber/beingbuddy-go/internal/store"
)

func newTestService() (*Service, *store.MemoryRepository) {
	repo := store.NewMemoryRepository()
	return NewService(repo, nil, nil), repo
}

func TestAssembleProducesOneEntryPerCall(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Assemble(ctx, fmt.Sprintf("Day %d was fine", i), "alice", nil)
		require.NoError(t, err)
	}

	entries, err := repo.ListEntries(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestAssembleEventFields(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	event, err := svc.Assemble(ctx, "I'm happy about my exam results", "alice", nil)
	require.NoError(t, err)

	assert.Equal(t, "Happy Day", event.Title)
	assert.NotEmpty(t, event.EntryID)
	assert.NotEmpty(t, event.Timestamp)

	// The Event carries the stored entry's id and timestamp unchanged.
	entries, err := repo.ListEntries(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entries[0].ID, event.EntryID)
	assert.Equal(t, entries[0].Timestamp, event.Timestamp)

	// Date parses as ISO-8601; Time as a 12-hour clock reading.
	date, err := time.Parse(time.RFC3339Nano, event.Date)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), date, 5*time.Second)

	clock, err := time.Parse("03:04 PM", event.Time)
	require.NoError(t, err)
	assert.Equal(t, date.Format("03:04 PM"), clock.Format("03:04 PM"))
}

func TestAssembleWithoutSentimentOmitsMoodFields(t *testing.T) {
	svc, _ := newTestService()

	event, err := svc.Assemble(context.Background(), "Nothing much happened", "alice", nil)
	require.NoError(t, err)

	assert.Empty(t, event.EmojiPath)
	assert.Nil(t, event.SentimentScore)
	assert.Empty(t, event.MoodLabel)
}

func TestAssembleCopiesSentiment(t *testing.T) {
	svc, _ := newTestService()

	sentiment := models.SentimentResult{
		Score:     -0.6,
		Intensity: 0.6,
		EmojiPath: models.EmojiBad,
		MoodLabel: models.MoodNegative,
	}
	event, err := svc.Assemble(context.Background(), "I'm so stressed about work", "alice", &sentiment)
	require.NoError(t, err)

	assert.Equal(t, models.EmojiBad, event.EmojiPath)
	require.NotNil(t, event.SentimentScore)
	assert.Equal(t, -0.6, *event.SentimentScore)
	assert.Equal(t, models.MoodNegative, event.MoodLabel)
}

func TestAnalyzeRecordsMoodPoint(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	event, sentiment, err := svc.Analyze(ctx, "I'm happy and relieved today", "alice")
	require.NoError(t, err)
	assert.Equal(t, 0.7, sentiment.Score)

	points, err := repo.ListMoodPoints(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, event.Date, points[0].Date)
	assert.Equal(t, 0.7, points[0].Score)
}

type failingRepo struct {
	store.Repository
	failSave bool
	failMood bool
}

func (r *failingRepo) SaveEntry(ctx context.Context, userID, summary string) (models.DiaryEntry, error) {
	if r.failSave {
		return models.DiaryEntry{}, fmt.Errorf("%w: disk full", store.ErrPersistence)
	}
	return r.Repository.SaveEntry(ctx, userID, summary)
}

func (r *failingRepo) AppendMoodPoint(ctx context.Context, userID, dateISO string, score float64) error {
	if r.failMood {
		return fmt.Errorf("%w: disk full", store.ErrPersistence)
	}
	return r.Repository.AppendMoodPoint(ctx, userID, dateISO, score)
}

func TestAssembleStoreFailure(t *testing.T) {
	repo := &failingRepo{Repository: store.NewMemoryRepository(), failSave: true}
	svc := NewService(repo, nil, nil)

	event, err := svc.Assemble(context.Background(), "A fine day", "alice", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrPersistence))
	assert.Equal(t, models.Event{}, event)
}

func TestAnalyzeSurvivesMoodPointFailure(t *testing.T) {
	repo := &failingRepo{Repository: store.NewMemoryRepository(), failMood: true}
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	event, _, err := svc.Analyze(ctx, "I'm happy today", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, event.EntryID)

	// The diary entry still made it in even though the mood sample failed.
	entries, err := repo.ListEntries(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
