// Package storage persists the state that must survive restarts: the next
// match and the player ratings. In-progress drafts are deliberately not
// stored.
package storage

import "context"

// MatchRecord is the persisted next-match state. Players holds decimal
// Telegram ids, or display names for guests, in registration order. The
// JSON keys match the historical match_info file.
type MatchRecord struct {
	Date       string   `json:"date"` // schedule.DateLayout
	VenueIndex int      `json:"center_index"`
	Players    []string `json:"cur_players"`
}

// RatingsRecord maps players to their four skill marks. ByID is keyed by
// decimal Telegram id, ByName by lower-cased display name for guests.
type RatingsRecord struct {
	ByID   map[string][4]float64 `json:"subscribed"`
	ByName map[string][4]float64 `json:"unsubscribed"`
}

// Store is the keyed persistence backend. Absent records return nil with no
// error; a fresh deployment starts empty.
type Store interface {
	LoadMatch(ctx context.Context) (*MatchRecord, error)
	SaveMatch(ctx context.Context, rec MatchRecord) error

	LoadRatings(ctx context.Context) (*RatingsRecord, error)
	SaveRatings(ctx context.Context, rec RatingsRecord) error
}
