// Package schedule keeps the next match's date and venue and renders the
// weekly program.
package schedule

import (
	"fmt"
	"time"
)

// DateLayout is how match dates are written by admins and stored.
const DateLayout = "02/01/2006 15:04"

// unregisterCutoff is how long before kickoff sign-ups become binding.
const unregisterCutoff = 48 * time.Hour

// matchDuration is used to display the end of the slot.
const matchDuration = 90 * time.Minute

// Venue is a playable center; the name reads as two lines on the program.
type Venue struct {
	Area string
	Name string
	Lat  float64
	Lon  float64
}

// Venues is the fixed table of centers the group plays at; /set_prog selects
// one by index.
var Venues = []Venue{
	{Area: "Urbansoccer", Name: "Aubervilliers", Lat: 48.907591, Lon: 2.375871},
	{Area: "Urbansoccer", Name: "La Defense", Lat: 48.899902, Lon: 2.221698},
	{Area: "Urbansoccer", Name: "Porte d'Ivry", Lat: 48.820167, Lon: 2.393684},
	{Area: "Stade du", Name: "Pré Saint-Jean", Lat: 48.841287, Lon: 2.2000618},
	{Area: "Urbansoccer", Name: "Evry", Lat: 48.629227, Lon: 2.405759},
	{Area: "Stade de", Name: "La Muette", Lat: 48.8647587, Lon: 2.2695797},
}

var frenchDays = [7]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// Match is the next scheduled session.
type Match struct {
	Date       time.Time
	VenueIndex int
}

// Parse builds a match from the admin's "dd/mm/yyyy hh:mm" date and a venue
// index.
func Parse(date string, venueIndex int) (Match, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return Match{}, fmt.Errorf("match date: %w", err)
	}
	if venueIndex < 0 || venueIndex >= len(Venues) {
		return Match{}, fmt.Errorf("venue index %d out of range", venueIndex)
	}
	return Match{Date: t, VenueIndex: venueIndex}, nil
}

// Venue returns the match's center.
func (m Match) Venue() Venue {
	return Venues[m.VenueIndex]
}

// SignupOpen reports whether players can still register: the match date must
// be set and in the future.
func (m Match) SignupOpen(now time.Time) bool {
	return now.Before(m.Date)
}

// CanUnregister reports whether a player may still withdraw without admin
// help; closed within the final 48 hours.
func (m Match) CanUnregister(now time.Time) bool {
	return now.Add(unregisterCutoff).Before(m.Date)
}

// ProgramText renders the session header: day, date, time slot and venue.
// HTML bold markers match Telegram's HTML parse mode.
func (m Match) ProgramText() string {
	start := m.Date.Format("15h04")
	end := m.Date.Add(matchDuration).Format("15h04")
	v := m.Venue()
	txt := fmt.Sprintf("\U0001f4c5 <b>%s</b> - %s \n", frenchDays[m.Date.Weekday()], m.Date.Format("02/01/2006"))
	txt += fmt.Sprintf("⏰ <b>%s</b> - %s \n", start, end)
	txt += fmt.Sprintf("\U0001f4cd %s <b>%s</b> \n", v.Area, v.Name)
	return txt
}

// NextPotentialDate is the admin helper answering "what day is it 45 days
// from now" in the group's timezone, for booking the next center slot.
func NextPotentialDate(now time.Time) (weekday string, date string) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		loc = time.UTC
	}
	t := now.In(loc).AddDate(0, 0, 45)
	return t.Weekday().String(), t.Format("02/01/2006")
}
