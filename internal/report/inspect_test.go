package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kvckarthik/sportsData/internal/jsontree"
)

func parseDoc(t *testing.T, raw string) jsontree.Value {
	t.Helper()
	doc, err := jsontree.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("failed parsing fixture: %v", err)
	}
	return doc
}

func TestInspectionFullDescent(t *testing.T) {
	doc := parseDoc(t, `{
		"leagues": [],
		"season": {"year": 2024},
		"week": {"number": 1},
		"events": [
			{
				"id": "401671789",
				"date": "2024-09-08T17:00Z",
				"competitions": [
					{
						"id": "401671789",
						"competitors": [
							{"homeAway": "home", "team": {"id": "1", "displayName": "Atlanta Falcons"}}
						]
					}
				]
			}
		]
	}`)

	var buf bytes.Buffer
	Inspection(&buf, doc)

	out := buf.String()
	for _, want := range []string{
		"Top-level keys:",
		"  - leagues",
		"  - season",
		"  - week",
		"  - events",
		"Event keys (first game): id, date, competitions",
		"Competition keys: id, competitors",
		"Competitor keys: homeAway, team",
		"Team keys: id, displayName",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestInspectionTopLevelKeysInDocumentOrder(t *testing.T) {
	doc := parseDoc(t, `{"zebra": 1, "alpha": 2, "mid": 3}`)

	var buf bytes.Buffer
	Inspection(&buf, doc)

	out := buf.String()
	zebra := strings.Index(out, "- zebra")
	alpha := strings.Index(out, "- alpha")
	mid := strings.Index(out, "- mid")
	if zebra < 0 || alpha < 0 || mid < 0 || !(zebra < alpha && alpha < mid) {
		t.Fatalf("expected document key order, got:\n%s", out)
	}
}

func TestInspectionStopsAtEmptyEvents(t *testing.T) {
	doc := parseDoc(t, `{"events": []}`)

	var buf bytes.Buffer
	Inspection(&buf, doc)

	out := buf.String()
	if !strings.Contains(out, "  - events") {
		t.Fatalf("expected top-level events key, got:\n%s", out)
	}
	if strings.Contains(out, "Event keys") {
		t.Fatalf("expected no event descent for empty events, got:\n%s", out)
	}
}

func TestInspectionStopsAtEventWithoutCompetitions(t *testing.T) {
	doc := parseDoc(t, `{"events": [{"id": "1", "competitions": []}]}`)

	var buf bytes.Buffer
	Inspection(&buf, doc)

	out := buf.String()
	if !strings.Contains(out, "Event keys (first game): id, competitions") {
		t.Fatalf("expected event keys, got:\n%s", out)
	}
	if strings.Contains(out, "Competition keys") {
		t.Fatalf("expected no competition descent, got:\n%s", out)
	}
}

func TestInspectionStopsAtCompetitorWithoutTeam(t *testing.T) {
	doc := parseDoc(t, `{"events": [{"competitions": [{"competitors": [{"homeAway": "home"}]}]}]}`)

	var buf bytes.Buffer
	Inspection(&buf, doc)

	out := buf.String()
	if !strings.Contains(out, "Competitor keys: homeAway") {
		t.Fatalf("expected competitor keys, got:\n%s", out)
	}
	if strings.Contains(out, "Team keys") {
		t.Fatalf("expected no team descent, got:\n%s", out)
	}
}

func TestInspectionStopsAtCompetitionWithoutCompetitors(t *testing.T) {
	doc := parseDoc(t, `{"events": [{"competitions": [{"id": "x", "competitors": []}]}]}`)

	var buf bytes.Buffer
	Inspection(&buf, doc)

	out := buf.String()
	if !strings.Contains(out, "Competition keys: id, competitors") {
		t.Fatalf("expected competition keys, got:\n%s", out)
	}
	if strings.Contains(out, "Competitor keys") {
		t.Fatalf("expected no competitor descent, got:\n%s", out)
	}
}
