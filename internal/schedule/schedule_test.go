package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse("14/09/2025 20:00", 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 14, 20, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, "Porte d'Ivry", m.Venue().Name)

	_, err = Parse("2025-09-14 20:00", 0)
	assert.Error(t, err)

	_, err = Parse("14/09/2025 20:00", len(Venues))
	assert.Error(t, err)

	_, err = Parse("14/09/2025 20:00", -1)
	assert.Error(t, err)
}

func TestSignupOpen(t *testing.T) {
	m, err := Parse("14/09/2025 20:00", 0)
	require.NoError(t, err)

	assert.True(t, m.SignupOpen(m.Date.Add(-time.Hour)))
	assert.False(t, m.SignupOpen(m.Date))
	assert.False(t, m.SignupOpen(m.Date.Add(time.Hour)))
}

func TestCanUnregister(t *testing.T) {
	m, err := Parse("14/09/2025 20:00", 0)
	require.NoError(t, err)

	assert.True(t, m.CanUnregister(m.Date.Add(-49*time.Hour)))
	assert.False(t, m.CanUnregister(m.Date.Add(-48*time.Hour)))
	assert.False(t, m.CanUnregister(m.Date.Add(-time.Hour)))
}

func TestProgramText(t *testing.T) {
	// 14/09/2025 is a Sunday
	m, err := Parse("14/09/2025 20:00", 0)
	require.NoError(t, err)

	txt := m.ProgramText()
	assert.Contains(t, txt, "<b>Dimanche</b> - 14/09/2025")
	assert.Contains(t, txt, "<b>20h00</b> - 21h30")
	assert.Contains(t, txt, "Urbansoccer <b>Aubervilliers</b>")
}

func TestNextPotentialDate(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	weekday, date := NextPotentialDate(now)
	assert.Equal(t, "Thursday", weekday)
	assert.Equal(t, "16/10/2025", date)
}
