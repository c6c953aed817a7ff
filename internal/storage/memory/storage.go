// Package memory is an in-memory storage backend for tests and local runs.
package memory

import (
	"context"
	"sync"

	"github.com/pash62/foot4ever2/internal/storage"
)

type Storage struct {
	mu      sync.RWMutex
	match   *storage.MatchRecord
	ratings *storage.RatingsRecord
}

func New() *Storage {
	return &Storage{}
}

var _ storage.Store = (*Storage)(nil)

func (s *Storage) LoadMatch(ctx context.Context) (*storage.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.match == nil {
		return nil, nil
	}
	rec := *s.match
	rec.Players = append([]string{}, s.match.Players...)
	return &rec, nil
}

func (s *Storage) SaveMatch(ctx context.Context, rec storage.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := rec
	cp.Players = append([]string{}, rec.Players...)
	s.match = &cp
	return nil
}

func (s *Storage) LoadRatings(ctx context.Context) (*storage.RatingsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ratings == nil {
		return nil, nil
	}
	rec := storage.RatingsRecord{
		ByID:   make(map[string][4]float64, len(s.ratings.ByID)),
		ByName: make(map[string][4]float64, len(s.ratings.ByName)),
	}
	for k, v := range s.ratings.ByID {
		rec.ByID[k] = v
	}
	for k, v := range s.ratings.ByName {
		rec.ByName[k] = v
	}
	return &rec, nil
}

func (s *Storage) SaveRatings(ctx context.Context, rec storage.RatingsRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := storage.RatingsRecord{
		ByID:   make(map[string][4]float64, len(rec.ByID)),
		ByName: make(map[string][4]float64, len(rec.ByName)),
	}
	for k, v := range rec.ByID {
		cp.ByID[k] = v
	}
	for k, v := range rec.ByName {
		cp.ByName[k] = v
	}
	s.ratings = &cp
	return nil
}
