package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pash62/foot4ever2/internal/storage"
)

type StorageSuite struct {
	suite.Suite

	mini  *miniredis.Miniredis
	store *Storage
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.store = NewWithClient(client)
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StorageSuite) TestEmptyReturnsNil() {
	ctx := context.Background()

	match, err := s.store.LoadMatch(ctx)
	s.Require().NoError(err)
	s.Nil(match)

	ratings, err := s.store.LoadRatings(ctx)
	s.Require().NoError(err)
	s.Nil(ratings)
}

func (s *StorageSuite) TestMatchRoundTrip() {
	ctx := context.Background()
	rec := storage.MatchRecord{
		Date:       "14/09/2025 20:00",
		VenueIndex: 1,
		Players:    []string{"123", "456", "Jean Dupont"},
	}
	s.Require().NoError(s.store.SaveMatch(ctx, rec))

	got, err := s.store.LoadMatch(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(rec, *got)
}

func (s *StorageSuite) TestMatchKeyAndEncoding() {
	ctx := context.Background()
	rec := storage.MatchRecord{Date: "14/09/2025 20:00", VenueIndex: 3}
	s.Require().NoError(s.store.SaveMatch(ctx, rec))

	raw, err := s.mini.Get("foot4ever:match")
	s.Require().NoError(err)
	s.JSONEq(`{"date":"14/09/2025 20:00","center_index":3,"cur_players":null}`, raw)
}

func (s *StorageSuite) TestRatingsRoundTrip() {
	ctx := context.Background()
	rec := storage.RatingsRecord{
		ByID:   map[string][4]float64{"123": {3, 4, 2, 3}},
		ByName: map[string][4]float64{"jean dupont": {2, 2, 2, 2}},
	}
	s.Require().NoError(s.store.SaveRatings(ctx, rec))

	got, err := s.store.LoadRatings(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(rec, *got)
}

func (s *StorageSuite) TestCorruptValueFails() {
	ctx := context.Background()
	s.Require().NoError(s.mini.Set("foot4ever:ratings", "not json"))

	_, err := s.store.LoadRatings(ctx)
	s.Error(err)
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}
