package tgbot

import (
	"fmt"
	"strings"

	"github.com/pash62/foot4ever2/internal/roster"
)

// BuildLineupCSV renders the current lineup for the admins' spreadsheet
// tooling: registration order, name, main/reserve role and ratings.
func (a *App) BuildLineupCSV() string {
	a.loadUsers()
	return lineupCSV(a.roster.Lineup())
}

func lineupCSV(lineup []*roster.Player) string {
	var b strings.Builder
	b.WriteString("order,name,role,goal,defense,attack,stamina\n")
	for i, p := range lineup {
		role := "main"
		if i >= roster.SquadPairSize {
			role = "reserve"
		}
		var rates [4]string
		if p.Ratings != nil {
			for j, r := range p.Ratings {
				rates[j] = fmt.Sprintf("%.1f", r)
			}
		}
		fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%s,%s\n",
			p.OrderID+1,
			escapeCSV(p.DisplayName),
			role,
			rates[0], rates[1], rates[2], rates[3],
		)
	}
	return b.String()
}

func escapeCSV(s string) string {
	s = strings.ReplaceAll(s, `"`, `""`)
	if strings.ContainsAny(s, ",\n\r") {
		return `"` + s + `"`
	}
	return s
}
