package roster

import (
	"sort"
	"strings"
)

// NotRegistered is the OrderID of a player who is not signed up.
const NotRegistered = -1

// SquadPairSize is how many players make up the two squads of a match.
const SquadPairSize = 10

// Roster holds every player the bot knows about. The Telegram app is its
// only mutator; update handling is single-threaded, so there is no locking
// here.
type Roster struct {
	players []*Player
}

func New() *Roster {
	return &Roster{}
}

func (r *Roster) Add(p *Player) {
	r.players = append(r.players, p)
}

// All returns the backing slice; callers must not reorder it.
func (r *Roster) All() []*Player {
	return r.players
}

// ByID finds a player by Telegram id. Guests (id 0) are never matched here.
func (r *Roster) ByID(id int64) *Player {
	if id == 0 {
		return nil
	}
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ByName finds a player by display name, case-insensitively.
func (r *Roster) ByName(name string) *Player {
	for _, p := range r.players {
		if strings.EqualFold(p.DisplayName, name) {
			return p
		}
	}
	return nil
}

// NextOrderID returns the registration position the next sign-up gets.
func (r *Roster) NextOrderID() int {
	max := NotRegistered
	for _, p := range r.players {
		if p.OrderID > max {
			max = p.OrderID
		}
	}
	return max + 1
}

// Register signs the player up for the next match. Registering twice keeps
// the original position.
func (r *Roster) Register(p *Player) {
	if p.Registered() {
		return
	}
	p.OrderID = r.NextOrderID()
}

// Unregister removes the player from the next match.
func (r *Roster) Unregister(p *Player) {
	p.OrderID = NotRegistered
}

// AddGuest registers a player who is not in the Telegram group, creating the
// entry when the name is unknown. "name" is a display name like "Jean Dupont".
func (r *Roster) AddGuest(name string, rates *Ratings) *Player {
	p := r.ByName(name)
	if p == nil {
		first, last := splitName(name)
		p = NewPlayer(0, first, last, rates)
		r.Add(p)
	}
	return p
}

func splitName(name string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// ClearRegistrations drops every sign-up, used when a new match is scheduled.
func (r *Roster) ClearRegistrations() {
	for _, p := range r.players {
		p.OrderID = NotRegistered
	}
}

// Lineup returns every registered player in registration order, main squad
// and reserves alike.
func (r *Roster) Lineup() []*Player {
	out := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		if p.Registered() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}

// Candidates is the draft candidate pool: the first SquadPairSize registered
// players in registration order.
func (r *Roster) Candidates() []*Player {
	lineup := r.Lineup()
	if len(lineup) > SquadPairSize {
		lineup = lineup[:SquadPairSize]
	}
	return lineup
}

// Suspended lists suspended players; NotSuspended the rest. Both keep roster
// order, for building the suspension keyboards.
func (r *Roster) Suspended() []*Player {
	out := []*Player{}
	for _, p := range r.players {
		if p.Suspended {
			out = append(out, p)
		}
	}
	return out
}

func (r *Roster) NotSuspended() []*Player {
	out := []*Player{}
	for _, p := range r.players {
		if !p.Suspended {
			out = append(out, p)
		}
	}
	return out
}
