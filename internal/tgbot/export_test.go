package tgbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pash62/foot4ever2/internal/roster"
)

func TestLineupCSV(t *testing.T) {
	r := roster.New()
	for i := 0; i < 11; i++ {
		p := roster.NewPlayer(int64(i+1), "Player", "", nil)
		r.Add(p)
		r.Register(p)
	}
	rated := r.ByID(1)
	rated.Ratings = &roster.Ratings{3, 4, 2, 3.5}

	csv := lineupCSV(r.Lineup())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	require.Len(t, lines, 12)

	assert.Equal(t, "order,name,role,goal,defense,attack,stamina", lines[0])
	assert.Equal(t, "1,Player,main,3.0,4.0,2.0,3.5", lines[1])
	assert.Equal(t, "2,Player,main,,,,", lines[2])
	// the eleventh registration is a reserve
	assert.Equal(t, "11,Player,reserve,,,,", lines[11])
}

func TestLineupCSVEmpty(t *testing.T) {
	assert.Equal(t, "order,name,role,goal,defense,attack,stamina\n", lineupCSV(nil))
}

func TestEscapeCSV(t *testing.T) {
	assert.Equal(t, "Jean Dupont", escapeCSV("Jean Dupont"))
	assert.Equal(t, `"Dupont, Jean"`, escapeCSV("Dupont, Jean"))
	assert.Equal(t, `Jean ""JD"" Dupont`, escapeCSV(`Jean "JD" Dupont`))
	assert.Equal(t, "\"a\nb\"", escapeCSV("a\nb"))
}
