package draft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pash62/foot4ever2/internal/roster"
)

func makeCandidates(n int) []*roster.Player {
	out := make([]*roster.Player, n)
	for i := range out {
		p := roster.NewPlayer(int64(i+1), fmt.Sprintf("Player%02d", i+1), "", nil)
		p.OrderID = i
		out[i] = p
	}
	return out
}

func rated(p *roster.Player, r roster.Ratings) *roster.Player {
	p.Ratings = &r
	return p
}

// newDraftingSession returns a session with ten candidates, the first two of
// which are already captains.
func newDraftingSession(t *testing.T) (*Session, []*roster.Player) {
	t.Helper()
	cands := makeCandidates(10)
	s := NewSession(cands)
	require.NoError(t, s.AddCaptain(cands[0]))
	require.NoError(t, s.AddCaptain(cands[1]))
	return s, cands
}

func TestAddCaptain(t *testing.T) {
	cands := makeCandidates(10)
	s := NewSession(cands)

	require.NoError(t, s.AddCaptain(cands[0]))
	assert.Equal(t, PhaseAwaitingSecondCaptain, s.Phase())
	assert.Same(t, cands[0], s.Captain(0))
	assert.Equal(t, []*roster.Player{cands[0]}, s.Team(0))

	// duplicate is a no-op
	require.NoError(t, s.AddCaptain(cands[0]))
	assert.Nil(t, s.Captain(1))

	require.NoError(t, s.AddCaptain(cands[1]))
	assert.Equal(t, PhaseDrafting, s.Phase())
	assert.Same(t, cands[1], s.Captain(1))

	assert.ErrorIs(t, s.AddCaptain(cands[2]), ErrTooManyCaptains)
}

func TestWhoseTurnBeforeSecondCaptain(t *testing.T) {
	cands := makeCandidates(10)
	s := NewSession(cands)
	assert.Nil(t, s.WhoseTurn())
	require.NoError(t, s.AddCaptain(cands[0]))
	assert.Nil(t, s.WhoseTurn())
}

func TestWhoseTurnLowerRatedCaptainPicksFirst(t *testing.T) {
	cands := makeCandidates(10)
	rated(cands[0], roster.Ratings{4, 4, 4, 4}) // mean 4.0
	rated(cands[1], roster.Ratings{2, 2, 2, 2}) // mean 2.0
	s := NewSession(cands)
	require.NoError(t, s.AddCaptain(cands[0]))
	require.NoError(t, s.AddCaptain(cands[1]))

	assert.Same(t, cands[1], s.WhoseTurn(), "lower average picks first")
}

func TestWhoseTurnEqualRatingsFavorsFirstCaptain(t *testing.T) {
	cands := makeCandidates(10)
	rated(cands[0], roster.Ratings{3, 3, 3, 3})
	rated(cands[1], roster.Ratings{3, 3, 3, 3})
	s := NewSession(cands)
	require.NoError(t, s.AddCaptain(cands[0]))
	require.NoError(t, s.AddCaptain(cands[1]))

	assert.Same(t, cands[0], s.WhoseTurn())
}

func TestWhoseTurnUnknownRatingsFallBackToFirstCaptain(t *testing.T) {
	s, cands := newDraftingSession(t)
	assert.Same(t, cands[0], s.WhoseTurn())
}

func TestWhoseTurnZeroRatingFallsBackToFirstCaptain(t *testing.T) {
	cands := makeCandidates(10)
	rated(cands[0], roster.Ratings{0, 0, 0, 0})
	rated(cands[1], roster.Ratings{2, 2, 2, 2})
	s := NewSession(cands)
	require.NoError(t, s.AddCaptain(cands[0]))
	require.NoError(t, s.AddCaptain(cands[1]))

	assert.Same(t, cands[0], s.WhoseTurn())
}

func TestWhoseTurnSmallerTeamPicksRegardlessOfRatings(t *testing.T) {
	cands := makeCandidates(10)
	rated(cands[0], roster.Ratings{5, 5, 5, 5})
	rated(cands[1], roster.Ratings{1, 1, 1, 1})
	s := NewSession(cands)
	require.NoError(t, s.AddCaptain(cands[0]))
	require.NoError(t, s.AddCaptain(cands[1]))

	// bring the teams to sizes 3 vs 4 by following the computed turns
	for len(s.Team(0)) != 3 || len(s.Team(1)) != 4 {
		require.NoError(t, s.Pick(s.WhoseTurn(), nextUndrafted(s)))
	}
	assert.Same(t, cands[0], s.WhoseTurn(), "size 3 side picks next")
}

func nextUndrafted(s *Session) *roster.Player {
	for _, p := range s.Candidates() {
		if !s.drafted(p) {
			return p
		}
	}
	return nil
}

func TestWhoseTurnAlwaysACaptain(t *testing.T) {
	s, cands := newDraftingSession(t)
	for !s.IsComplete() {
		turn := s.WhoseTurn()
		require.True(t, turn == cands[0] || turn == cands[1])
		require.NoError(t, s.Pick(turn, nextUndrafted(s)))
	}
	turn := s.WhoseTurn()
	require.True(t, turn == cands[0] || turn == cands[1])
}

func TestEightAlternatingPicksComplete(t *testing.T) {
	s, _ := newDraftingSession(t)
	for i := 0; i < 8; i++ {
		require.False(t, s.IsComplete())
		require.NoError(t, s.Pick(s.WhoseTurn(), nextUndrafted(s)))
	}
	assert.True(t, s.IsComplete())
	assert.Equal(t, PhaseAwaitingValidation, s.Phase())
	assert.Len(t, s.Team(0), TeamSize)
	assert.Len(t, s.Team(1), TeamSize)
}

func TestPickErrors(t *testing.T) {
	cands := makeCandidates(10)
	s := NewSession(cands)
	require.NoError(t, s.AddCaptain(cands[0]))

	// only one captain yet
	assert.ErrorIs(t, s.Pick(cands[0], cands[2]), ErrNotDrafting)

	require.NoError(t, s.AddCaptain(cands[1]))

	// unknown ratings: first captain's turn
	assert.ErrorIs(t, s.Pick(cands[1], cands[2]), ErrNotYourTurn)

	require.NoError(t, s.Pick(cands[0], cands[2]))
	// picking someone already drafted, captains included
	assert.ErrorIs(t, s.Pick(s.WhoseTurn(), cands[2]), ErrAlreadyPicked)
	assert.ErrorIs(t, s.Pick(s.WhoseTurn(), cands[0]), ErrAlreadyPicked)

	for !s.IsComplete() {
		require.NoError(t, s.Pick(s.WhoseTurn(), nextUndrafted(s)))
	}
	assert.ErrorIs(t, s.Pick(cands[0], cands[9]), ErrNotDrafting)
}

func TestValidateFlow(t *testing.T) {
	s, cands := newDraftingSession(t)

	_, err := s.Validate(cands[0])
	assert.ErrorIs(t, err, ErrNotComplete)

	for !s.IsComplete() {
		require.NoError(t, s.Pick(s.WhoseTurn(), nextUndrafted(s)))
	}

	// neither validated: first captain's turn to confirm
	assert.Same(t, cands[0], s.WhoseTurn())
	_, err = s.Validate(cands[1])
	assert.ErrorIs(t, err, ErrNotYourTurn)

	done, err := s.Validate(cands[0])
	require.NoError(t, err)
	assert.False(t, done)
	assert.Same(t, cands[1], s.WhoseTurn())

	// confirming twice does not double-count
	done, err = s.Validate(cands[0])
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, PhaseAwaitingValidation, s.Phase())

	done, err = s.Validate(cands[1])
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, PhaseFinalized, s.Phase())
}

func TestManagerSingleSession(t *testing.T) {
	m := NewManager()
	assert.False(t, m.Running())
	assert.Nil(t, m.Session())

	cands := makeCandidates(10)
	s, err := m.Start(cands)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, m.Running())

	_, err = m.Start(cands)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Same(t, s, m.Session(), "failed start leaves the session untouched")

	m.Cancel()
	assert.False(t, m.Running())

	_, err = m.Start(cands)
	assert.NoError(t, err)
}
