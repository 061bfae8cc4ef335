package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_ListsNewestFirst(t *testing.T) {
	repo := NewMemoryRepository(10)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := range 3 {
		require.NoError(t, repo.InsertDispatch(ctx, InsertDispatchInput{
			ID:           fmt.Sprintf("d%d", i),
			ChannelID:    "#duckberg",
			Originator:   "scrooge",
			Roster:       []string{"scrooge"},
			Reason:       "deadline",
			DispatchedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.InsertDispatch(ctx, InsertDispatchInput{ID: "other", ChannelID: "#money-bin"}))

	got, err := repo.ListRecentDispatchesByChannel(ctx, "#duckberg", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d2", got[0].ID)
	assert.Equal(t, "d1", got[1].ID)
	assert.False(t, got[0].CreatedAt.IsZero())

	got, err = repo.ListRecentDispatchesByChannel(ctx, "#money-bin", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.ListRecentDispatchesByChannel(ctx, "#nowhere", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRepository_DropsOldestBeyondCapacity(t *testing.T) {
	repo := NewMemoryRepository(2)
	ctx := context.Background()
	for i := range 4 {
		require.NoError(t, repo.InsertDispatch(ctx, InsertDispatchInput{ID: fmt.Sprintf("d%d", i), ChannelID: "#duckberg"}))
	}

	got, err := repo.ListRecentDispatchesByChannel(ctx, "#duckberg", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d3", got[0].ID)
	assert.Equal(t, "d2", got[1].ID)
}

func TestMemoryRepository_CopiesSlices(t *testing.T) {
	repo := NewMemoryRepository(0)
	roster := []string{"scrooge", "donald"}
	require.NoError(t, repo.InsertDispatch(context.Background(), InsertDispatchInput{ID: "d", ChannelID: "#duckberg", Roster: roster}))
	roster[0] = "glomgold"

	got, err := repo.ListRecentDispatchesByChannel(context.Background(), "#duckberg", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"scrooge", "donald"}, got[0].Roster)
}

func TestMemoryRepository_InvalidLimit(t *testing.T) {
	repo := NewMemoryRepository(1)
	_, err := repo.ListRecentDispatchesByChannel(context.Background(), "#duckberg", 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
