package draft

import (
	"github.com/pash62/foot4ever2/internal/roster"
)

// TeamSize is a full squad: the captain plus four picks.
const TeamSize = 5

// Phase is the lifecycle step of a draft session. The idle state has no
// session at all; see Manager.
type Phase string

const (
	PhaseAwaitingSecondCaptain Phase = "awaiting_second_captain"
	PhaseDrafting              Phase = "drafting"
	PhaseAwaitingValidation    Phase = "awaiting_validation"
	PhaseFinalized             Phase = "finalized"
)

// Session is one TeamKeshi run: two captains alternately picking from the
// candidate pool, then both confirming the result. Slot 0 is the first
// captain (team white), slot 1 the second (team red). Players are referenced,
// never owned; the roster keeps them.
//
// Whose turn it is is always derived from the current team compositions,
// never stored, so there is no second source of truth to drift.
type Session struct {
	candidates []*roster.Player
	teams      [2][]*roster.Player // member 0 of each team is its captain
	validated  [2]bool
}

// NewSession starts a draft over the given candidate pool. The pool is fixed
// for the session's lifetime.
func NewSession(candidates []*roster.Player) *Session {
	return &Session{candidates: candidates}
}

// Candidates returns the fixed candidate pool.
func (s *Session) Candidates() []*roster.Player {
	return s.candidates
}

// Captain returns the captain in the given slot (0 or 1), nil when the slot
// is not filled yet.
func (s *Session) Captain(slot int) *roster.Player {
	if s.teams[slot] == nil {
		return nil
	}
	return s.teams[slot][0]
}

// Team returns the members of the given slot's team, captain first.
func (s *Session) Team(slot int) []*roster.Player {
	return s.teams[slot]
}

func (s *Session) captainCount() int {
	n := 0
	for slot := range s.teams {
		if s.teams[slot] != nil {
			n++
		}
	}
	return n
}

// Phase derives the lifecycle step from the current state.
func (s *Session) Phase() Phase {
	switch {
	case s.captainCount() < 2:
		return PhaseAwaitingSecondCaptain
	case !s.IsComplete():
		return PhaseDrafting
	case s.validated[0] && s.validated[1]:
		return PhaseFinalized
	default:
		return PhaseAwaitingValidation
	}
}

// AddCaptain registers p as a captain and first member of their own team.
// Adding an existing captain again is a no-op. A third captain is rejected.
func (s *Session) AddCaptain(p *roster.Player) error {
	for slot := range s.teams {
		if s.teams[slot] != nil && s.teams[slot][0] == p {
			return nil
		}
	}
	for slot := range s.teams {
		if s.teams[slot] == nil {
			s.teams[slot] = []*roster.Player{p}
			return nil
		}
	}
	return ErrTooManyCaptains
}

// drafted reports whether p is already on either team.
func (s *Session) drafted(p *roster.Player) bool {
	for slot := range s.teams {
		for _, member := range s.teams[slot] {
			if member == p {
				return true
			}
		}
	}
	return false
}

// Pick appends target to the acting captain's team. Only valid while both
// teams are still filling, and only for the captain whose turn it is.
func (s *Session) Pick(actor, target *roster.Player) error {
	if s.captainCount() < 2 || s.IsComplete() {
		return ErrNotDrafting
	}
	if actor != s.WhoseTurn() {
		return ErrNotYourTurn
	}
	if s.drafted(target) {
		return ErrAlreadyPicked
	}
	for slot := range s.teams {
		if s.teams[slot][0] == actor {
			s.teams[slot] = append(s.teams[slot], target)
			return nil
		}
	}
	return ErrNotYourTurn
}

// IsComplete reports whether both teams have reached full size.
func (s *Session) IsComplete() bool {
	if s.captainCount() < 2 {
		return false
	}
	return len(s.teams[0]) >= TeamSize && len(s.teams[1]) >= TeamSize
}

// WhoseTurn returns the captain expected to act next: pick while the teams
// are filling, validate once they are complete. Nil before the second
// captain joins.
//
// The tie-break while team sizes are equal is the draft's only fairness
// rule: when both captains carry a strictly positive rating average, the
// lower-rated captain picks first. Unknown or zero averages fall back to
// the first captain.
func (s *Session) WhoseTurn() *roster.Player {
	if s.captainCount() < 2 {
		return nil
	}
	capA, capB := s.teams[0][0], s.teams[1][0]

	if s.IsComplete() {
		if s.validated[0] {
			return capB
		}
		return capA
	}

	if len(s.teams[0]) == len(s.teams[1]) {
		if capA.Ratings != nil && capB.Ratings != nil {
			meanA, meanB := capA.Ratings.Mean(), capB.Ratings.Mean()
			if meanA > 0 && meanB > 0 {
				if meanA <= meanB {
					return capA
				}
				return capB
			}
		}
		return capA
	}
	if len(s.teams[0]) < len(s.teams[1]) {
		return capA
	}
	return capB
}

// Validate records the captain's confirmation of the finished split. The
// returned done flag is true once both captains have confirmed. Confirming
// twice does not double-count.
func (s *Session) Validate(captain *roster.Player) (done bool, err error) {
	if !s.IsComplete() {
		return false, ErrNotComplete
	}
	for slot := range s.teams {
		if s.teams[slot][0] == captain && s.validated[slot] {
			return false, nil
		}
	}
	if captain != s.WhoseTurn() {
		return false, ErrNotYourTurn
	}
	for slot := range s.teams {
		if s.teams[slot][0] == captain {
			s.validated[slot] = true
		}
	}
	return s.validated[0] && s.validated[1], nil
}
