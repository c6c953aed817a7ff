package draft

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pash62/foot4ever2/internal/roster"
)

// Option values the bot wires onto inline-keyboard buttons. Picks carry the
// target's display name as value.
const (
	OptionConfirm = "confirm"
	OptionDecline = "decline"
	OptionCancel  = "cancel"
)

// Option is one selectable button of the draft UI.
type Option struct {
	Label string
	Value string
}

const (
	labelConfirm = "Oui"
	labelDecline = "Non"
	labelCancel  = "Annuler"

	promptSelectPlayer  = "c'est à toi de choisir (le score est de 1 à 5 dans cet ordre: goal, défense, attaque, course)"
	promptAskValidation = "Tu confirmes ton équipe?"
)

// Options lists what the turn holder may press: the undrafted candidates
// plus cancel while picking, yes/no once the teams are complete. Drafted
// players are excluded here rather than re-checked by every caller.
func Options(s *Session) []Option {
	if s.IsComplete() {
		return []Option{
			{Label: labelConfirm, Value: OptionConfirm},
			{Label: labelDecline, Value: OptionDecline},
		}
	}
	opts := []Option{}
	for _, p := range s.Candidates() {
		if s.drafted(p) {
			continue
		}
		label := p.DisplayName
		if p.Ratings != nil {
			label = fmt.Sprintf("%s: %s", p.DisplayName, formatRatings(*p.Ratings))
		}
		opts = append(opts, Option{Label: label, Value: p.DisplayName})
	}
	opts = append(opts, Option{Label: labelCancel, Value: OptionCancel})
	return opts
}

// StatusText is the message shown above the keyboard: whose turn it is,
// what they should do, and the teams so far.
func StatusText(s *Session) string {
	turn := s.WhoseTurn()
	if turn == nil {
		return ""
	}
	prompt := promptSelectPlayer
	if s.IsComplete() {
		prompt = promptAskValidation
	}
	return fmt.Sprintf("%s, %s\n\n%s", turn.DisplayName, prompt, TeamsText(s, false, true))
}

// TeamsText renders both teams: a colour-marked header per team, optionally
// the team's averaged ratings, then the numbered members, optionally sorted
// by first name.
func TeamsText(s *Session, sortAlpha, withRates bool) string {
	var b strings.Builder
	for slot := 0; slot < 2; slot++ {
		members := s.Team(slot)
		if members == nil {
			continue
		}
		marker, colour := "⚪", "blanche"
		if slot == 1 {
			marker, colour = "\U0001f534", "rouge"
		}
		sides := strings.Repeat(marker, 3)
		fmt.Fprintf(&b, "%s Equipe %s %s\n", sides, colour, sides)

		if sortAlpha {
			members = append([]*roster.Player{}, members...)
			sort.Slice(members, func(i, j int) bool {
				return members[i].FirstName < members[j].FirstName
			})
		}

		if withRates {
			if line, ok := teamRatesLine(members); ok {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		for i, p := range members {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p.DisplayName)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// teamRatesLine averages each rating dimension over the members with known
// ratings. Members without ratings count in neither the sum nor the divisor;
// when nobody is rated there is no line at all.
func teamRatesLine(members []*roster.Player) (string, bool) {
	var sums [4]float64
	rated := 0
	for _, p := range members {
		if p.Ratings == nil {
			continue
		}
		for i, rate := range p.Ratings {
			sums[i] += rate
		}
		rated++
	}
	if rated == 0 {
		return "", false
	}
	line := fmt.Sprintf("Goal: %s, Défense: %s, Attaque: %s, Course: %s",
		formatRate(sums[0]/float64(rated)),
		formatRate(sums[1]/float64(rated)),
		formatRate(sums[2]/float64(rated)),
		formatRate(sums[3]/float64(rated)),
	)
	return line, true
}

func formatRatings(r roster.Ratings) string {
	parts := make([]string, len(r))
	for i, rate := range r {
		parts[i] = formatRate(rate)
	}
	return strings.Join(parts, "|")
}

// formatRate prints whole numbers without a decimal point, everything else
// with one decimal.
func formatRate(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
