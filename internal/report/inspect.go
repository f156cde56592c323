package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kvckarthik/sportsData/internal/jsontree"
)

// Inspection prints the key names present at each nesting level of the
// raw document: top level, first event, its first competition, that
// competition's first competitor, and the competitor's team. Each level
// is entered only when the parent exists and is non-empty; absence stops
// the descent without complaint. This is a schema-discovery aid, so it
// works on the untyped tree rather than the domain models.
func Inspection(w io.Writer, doc jsontree.Value) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "DATA STRUCTURE INSPECTION")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Top-level keys:")
	for _, key := range doc.Keys() {
		fmt.Fprintf(w, "  - %s\n", key)
	}
	fmt.Fprintln(w)

	event := doc.Field("events").Index(0)
	if !event.Exists() {
		return
	}
	printKeys(w, "Event keys (first game)", event)

	competition := event.Field("competitions").Index(0)
	if !competition.Exists() {
		return
	}
	printKeys(w, "Competition keys", competition)

	competitor := competition.Field("competitors").Index(0)
	if !competitor.Exists() {
		return
	}
	printKeys(w, "Competitor keys", competitor)

	team := competitor.Field("team")
	if !team.Exists() {
		return
	}
	printKeys(w, "Team keys", team)
}

func printKeys(w io.Writer, label string, v jsontree.Value) {
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(v.Keys(), ", "))
	fmt.Fprintln(w)
}
