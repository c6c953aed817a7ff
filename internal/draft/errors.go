package draft

import "errors"

var (
	ErrAlreadyRunning  = errors.New("a draft is already running")
	ErrNoSession       = errors.New("no draft is running")
	ErrTooManyCaptains = errors.New("both captains are already set")
	ErrNotYourTurn     = errors.New("not this captain's turn")
	ErrNotDrafting     = errors.New("draft is not in the picking phase")
	ErrNotComplete     = errors.New("teams are not complete yet")
	ErrAlreadyPicked   = errors.New("player is already on a team")
)
