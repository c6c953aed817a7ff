package roster

import (
	"strings"
)

// DefaultName is shown for players whose Telegram profile carries no name at all.
const DefaultName = "Inconnu"

// Ratings holds a player's four skill marks, each in [0,5]:
// goalkeeping, defense, attack, stamina.
type Ratings [4]float64

// Mean returns the average of the four marks.
func (r Ratings) Mean() float64 {
	return (r[0] + r[1] + r[2] + r[3]) / 4
}

// Player is one member of the football group. Guests added by hand through
// the admin commands have ID 0 and are identified by display name only.
type Player struct {
	ID          int64
	FirstName   string
	LastName    string
	DisplayName string

	// Ratings is nil when nobody has rated the player yet.
	Ratings *Ratings

	// OrderID is the registration position for the next match, -1 when the
	// player is not signed up. Unique among registered players.
	OrderID int

	Suspended bool
	Admin     bool
}

// NewPlayer builds a player with a normalized display name and no registration.
func NewPlayer(id int64, firstName, lastName string, rates *Ratings) *Player {
	return &Player{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		DisplayName: MakeDisplayName(firstName, lastName),
		Ratings:     rates,
		OrderID:     NotRegistered,
	}
}

// Registered reports whether the player is signed up for the next match.
func (p *Player) Registered() bool {
	return p.OrderID >= 0
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// MakeDisplayName joins the title-cased name parts, falling back to
// DefaultName when both are empty.
func MakeDisplayName(firstName, lastName string) string {
	switch {
	case firstName != "" && lastName != "":
		return titleCase(firstName) + " " + titleCase(lastName)
	case firstName != "":
		return titleCase(firstName)
	case lastName != "":
		return titleCase(lastName)
	default:
		return DefaultName
	}
}
