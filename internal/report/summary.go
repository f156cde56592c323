// Package report renders the human-readable views of a fetched
// scoreboard: the weekly game summary and the structure inspection.
// Everything is written to an injected io.Writer; missing upstream data
// degrades to "Unknown" placeholders instead of failing the run.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kvckarthik/sportsData/internal/domain"
	"github.com/kvckarthik/sportsData/internal/timeutil"
)

const (
	unknown     = "Unknown"
	unknownDate = "Unknown date"
	noGames     = "No games found in response."
)

var rule = strings.Repeat("=", 80)

// Summary renders one week's schedule. A response without events prints
// only the no-games notice.
func Summary(w io.Writer, sb domain.Scoreboard) {
	if len(sb.Events) == 0 {
		fmt.Fprintln(w, noGames)
		return
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "NFL SCHEDULE")
	fmt.Fprintf(w, "  Season: %s\n", intOrUnknown(sb.Season.Year))
	fmt.Fprintf(w, "  Week: %s\n", intOrUnknown(sb.Week.Number))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	for i, event := range sb.Events {
		fmt.Fprintf(w, "Game %d:\n", i+1)
		fmt.Fprintf(w, "  ID: %s\n", orUnknown(event.ID))
		if matchup, ok := matchupLine(event); ok {
			fmt.Fprintf(w, "  Matchup: %s\n", matchup)
		}
		fmt.Fprintf(w, "  Date: %s\n", kickoff(event.Date))
		fmt.Fprintf(w, "  Status: %s\n", orUnknown(event.Status.Type.Description))
		fmt.Fprintln(w)
	}
}

// matchupLine builds "Away @ Home" from the first competition. Events
// without a competition, or with fewer than two competitors, get no
// matchup line at all; a missing side still renders as Unknown.
func matchupLine(event domain.Event) (string, bool) {
	if len(event.Competitions) == 0 {
		return "", false
	}
	comp := event.Competitions[0]
	if len(comp.Competitors) < 2 {
		return "", false
	}

	home, _ := comp.HomeCompetitor()
	away, _ := comp.AwayCompetitor()
	return fmt.Sprintf("%s @ %s",
		orUnknown(away.Team.DisplayName),
		orUnknown(home.Team.DisplayName),
	), true
}

// kickoff reformats an ISO-8601 date for reading; unparseable input is
// printed verbatim rather than dropped.
func kickoff(date string) string {
	if date == "" {
		return unknownDate
	}
	t, err := timeutil.ParseKickoff(date)
	if err != nil {
		return date
	}
	return timeutil.FormatKickoff(t)
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func intOrUnknown(n *int) string {
	if n == nil {
		return unknown
	}
	return strconv.Itoa(*n)
}
