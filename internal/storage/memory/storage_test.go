package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pash62/foot4ever2/internal/storage"
)

func TestEmptyStoreReturnsNil(t *testing.T) {
	s := New()
	ctx := context.Background()

	match, err := s.LoadMatch(ctx)
	require.NoError(t, err)
	assert.Nil(t, match)

	ratings, err := s.LoadRatings(ctx)
	require.NoError(t, err)
	assert.Nil(t, ratings)
}

func TestMatchRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	rec := storage.MatchRecord{
		Date:       "14/09/2025 20:00",
		VenueIndex: 2,
		Players:    []string{"123", "456", "Jean Dupont"},
	}
	require.NoError(t, s.SaveMatch(ctx, rec))

	got, err := s.LoadMatch(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	// the store must not alias the caller's slice
	rec.Players[0] = "mutated"
	got2, err := s.LoadMatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "123", got2.Players[0])

	got.Players[1] = "mutated"
	got3, err := s.LoadMatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "456", got3.Players[1])
}

func TestRatingsRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	rec := storage.RatingsRecord{
		ByID:   map[string][4]float64{"123": {3, 4, 2, 3}},
		ByName: map[string][4]float64{"jean dupont": {2, 2, 2, 2}},
	}
	require.NoError(t, s.SaveRatings(ctx, rec))

	got, err := s.LoadRatings(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	rec.ByID["999"] = [4]float64{5, 5, 5, 5}
	got2, err := s.LoadRatings(ctx)
	require.NoError(t, err)
	assert.NotContains(t, got2.ByID, "999")
}

func TestSaveOverwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveMatch(ctx, storage.MatchRecord{Date: "07/09/2025 20:00", Players: []string{"1"}}))
	require.NoError(t, s.SaveMatch(ctx, storage.MatchRecord{Date: "14/09/2025 20:00"}))

	got, err := s.LoadMatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "14/09/2025 20:00", got.Date)
	assert.Empty(t, got.Players)
}
