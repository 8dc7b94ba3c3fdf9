package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"category": "environment"}))
	require.NoError(t, repo.RecordEvent(EventTurnEnded, nil))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"category": "economy"}))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	plays, err := repo.GetEvents(time.Time{}, []EventType{EventCardPlayed})
	require.NoError(t, err)
	assert.Len(t, plays, 2)

	future, err := repo.GetEvents(time.Now().Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, future)

	require.NoError(t, repo.Clear())
	all, err = repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryRepository_SessionEvents(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventGameStarted, EventMetadata{"session": "a", "biome": "rainforest"}))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"session": "a", "category": "environment"}))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"session": "b", "category": "economy"}))
	require.NoError(t, repo.RecordEvent(EventTurnEnded, nil))

	own, err := repo.SessionEvents("a")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, EventGameStarted, own[0].Type)
	assert.Equal(t, EventCardPlayed, own[1].Type)

	other, err := repo.SessionEvents("b")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	none, err := repo.SessionEvents("missing")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.Clear())
	own, err = repo.SessionEvents("a")
	require.NoError(t, err)
	assert.Empty(t, own)
}

func TestCalculateStats_AggregatesRates(t *testing.T) {
	repo := NewMemoryRepository()

	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"category": "environment"}))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"category": "environment"}))
	require.NoError(t, repo.RecordEvent(EventCardPlayed, EventMetadata{"category": "society"}))
	require.NoError(t, repo.RecordEvent(EventTurnEnded, nil))
	require.NoError(t, repo.RecordEvent(EventTurnEnded, nil))
	require.NoError(t, repo.RecordEvent(EventDisasterStruck, EventMetadata{"ref": "wildfire"}))
	require.NoError(t, repo.RecordEvent(EventEventResolved, EventMetadata{"kind": "risky"}))
	require.NoError(t, repo.RecordEvent(EventGameLost, EventMetadata{"reason": "equilibrium_collapse"}))

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.CardPlays)
	assert.Equal(t, 2, stats.TurnsEnded)
	assert.Equal(t, 1, stats.DisasterStrikes)
	assert.Equal(t, 1, stats.GamesLost)
	assert.Zero(t, stats.GamesWon)
	assert.InDelta(t, 1.5, stats.CardsPerTurn, 1e-9)
	assert.InDelta(t, 0.5, stats.DisastersPerTurn, 1e-9)
	assert.Equal(t, 2, stats.CardsByCategory["environment"])
	assert.Equal(t, 1, stats.CardsByCategory["society"])
	assert.Equal(t, 1, stats.ChoicesByKind["risky"])
	assert.Equal(t, 3, stats.EventCounts[EventCardPlayed])
}
