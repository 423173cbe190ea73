package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/codebot/internal/domain"
	"github.com/alexanderramin/codebot/internal/testutil"
)

var testSavedAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func testRecord() *domain.ConversationRecord {
	return &domain.ConversationRecord{
		ID:        uuid.New().String(),
		Title:     "morning chat",
		BotName:   "CodeBot",
		SavedAt:   testSavedAt,
		TurnCount: 2,
	}
}

func testTurns() []domain.ConversationTurn {
	return []domain.ConversationTurn{
		{Speaker: domain.SpeakerUser, Text: "hello", Timestamp: testSavedAt},
		{Speaker: domain.SpeakerBot, Text: "Hi there!", Timestamp: testSavedAt.Add(time.Second)},
	}
}

func TestConversationRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteConversationRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Title, got.Title)
	assert.Equal(t, rec.BotName, got.BotName)
	assert.True(t, rec.SavedAt.Equal(got.SavedAt))
	assert.Equal(t, rec.TurnCount, got.TurnCount)
}

func TestConversationRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteConversationRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationRepo_TurnsRoundTrip(t *testing.T) {
	repo := NewSQLiteConversationRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.AppendTurns(ctx, rec.ID, testTurns()))

	turns, err := repo.ListTurns(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, domain.SpeakerUser, turns[0].Speaker)
	assert.Equal(t, "hello", turns[0].Text)
	assert.Equal(t, domain.SpeakerBot, turns[1].Speaker)
	assert.Equal(t, "Hi there!", turns[1].Text)
}

func TestConversationRepo_TopicCountsRoundTrip(t *testing.T) {
	repo := NewSQLiteConversationRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, repo.Create(ctx, rec))

	freq := map[domain.Intent]int{
		domain.IntentGreeting: 2,
		domain.IntentFarewell: 1,
		domain.IntentUnknown:  0,
	}
	require.NoError(t, repo.SaveTopicCounts(ctx, rec.ID, freq))

	got, err := repo.TopicCounts(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, freq, got)

	// Upsert overwrites.
	freq[domain.IntentGreeting] = 5
	require.NoError(t, repo.SaveTopicCounts(ctx, rec.ID, freq))
	got, err = repo.TopicCounts(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got[domain.IntentGreeting])
}

func TestConversationRepo_ListOrdersBySavedAtDesc(t *testing.T) {
	repo := NewSQLiteConversationRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	older := testRecord()
	older.SavedAt = testSavedAt.Add(-time.Hour)
	newer := testRecord()

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}

func TestConversationRepo_DeleteCascades(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteConversationRepo(database)
	ctx := context.Background()

	rec := testRecord()
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.AppendTurns(ctx, rec.ID, testTurns()))
	require.NoError(t, repo.SaveTopicCounts(ctx, rec.ID, map[domain.Intent]int{domain.IntentGreeting: 1}))

	require.NoError(t, repo.Delete(ctx, rec.ID))

	turns, err := repo.ListTurns(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, turns)

	counts, err := repo.TopicCounts(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, counts)

	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
}
