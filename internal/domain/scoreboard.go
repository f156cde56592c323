package domain

// The scoreboard shapes mirror the slice of the ESPN site API response the
// tool actually consumes. Every field is optional upstream: strings decode
// to "" when absent, numeric fields are pointers so a missing value is
// distinguishable from a real zero. Rendering decides how absences surface.

// Scoreboard is the top-level schedule payload for one week.
type Scoreboard struct {
	Season Season  `json:"season"`
	Week   Week    `json:"week"`
	Events []Event `json:"events"`
}

// Season identifies the year and season-type of the schedule slice.
type Season struct {
	Year *int `json:"year"`
	Type *int `json:"type"`
}

// Week identifies the week within the season.
type Week struct {
	Number *int `json:"number"`
}

// Event is one scheduled, live, or completed game.
type Event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Date         string        `json:"date"`
	Status       Status        `json:"status"`
	Competitions []Competition `json:"competitions"`
}

// Status wraps the nested status description ESPN publishes.
type Status struct {
	Type StatusType `json:"type"`
}

// StatusType carries the human-readable game state.
type StatusType struct {
	Description string `json:"description"`
}

// Competition holds the competitors for one matchup. Events carry a list
// but in practice exactly one entry is consumed.
type Competition struct {
	Competitors []Competitor `json:"competitors"`
}

// Competitor is one side of a matchup, tagged home or away.
type Competitor struct {
	HomeAway string `json:"homeAway"`
	Team     Team   `json:"team"`
}

// Team carries the display name shown in summaries.
type Team struct {
	DisplayName string `json:"displayName"`
}

// Document pairs a decoded scoreboard with the raw bytes it came from.
// The raw payload feeds the snapshot writer and the structure inspector,
// which both need the full untyped document.
type Document struct {
	Scoreboard Scoreboard
	Raw        []byte
}

// HomeCompetitor returns the first competitor tagged home, if any.
func (c Competition) HomeCompetitor() (Competitor, bool) {
	return c.competitorBySide("home")
}

// AwayCompetitor returns the first competitor tagged away, if any.
func (c Competition) AwayCompetitor() (Competitor, bool) {
	return c.competitorBySide("away")
}

func (c Competition) competitorBySide(side string) (Competitor, bool) {
	for _, comp := range c.Competitors {
		if comp.HomeAway == side {
			return comp, true
		}
	}
	return Competitor{}, false
}
