package draft

import (
	"github.com/pash62/foot4ever2/internal/roster"
)

// Manager owns the single live draft session. The bot handles one update at
// a time, so the manager needs no locking; any concurrent redesign must add
// mutual exclusion here.
type Manager struct {
	session *Session
}

func NewManager() *Manager {
	return &Manager{}
}

// Running reports whether a draft session is live.
func (m *Manager) Running() bool {
	return m.session != nil
}

// Session returns the live session, nil when idle.
func (m *Manager) Session() *Session {
	return m.session
}

// Start creates the live session over the given candidate pool. Starting
// while a session is live fails and leaves it untouched.
func (m *Manager) Start(candidates []*roster.Player) (*Session, error) {
	if m.session != nil {
		return nil, ErrAlreadyRunning
	}
	m.session = NewSession(candidates)
	return m.session, nil
}

// Cancel discards the live session, picks and validations included. Safe to
// call when idle.
func (m *Manager) Cancel() {
	m.session = nil
}
