package domain

import (
	"encoding/json"
	"testing"
)

func TestScoreboardDecodeDistinguishesMissingNumbers(t *testing.T) {
	var sb Scoreboard
	if err := json.Unmarshal([]byte(`{"season":{"year":2024},"week":{}}`), &sb); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if sb.Season.Year == nil || *sb.Season.Year != 2024 {
		t.Fatalf("expected year 2024, got %v", sb.Season.Year)
	}
	if sb.Season.Type != nil {
		t.Fatalf("expected absent season type to stay nil")
	}
	if sb.Week.Number != nil {
		t.Fatalf("expected absent week number to stay nil")
	}
}

func TestCompetitionSideLookup(t *testing.T) {
	comp := Competition{Competitors: []Competitor{
		{HomeAway: "away", Team: Team{DisplayName: "Road Team"}},
		{HomeAway: "home", Team: Team{DisplayName: "Host Team"}},
	}}

	home, ok := comp.HomeCompetitor()
	if !ok || home.Team.DisplayName != "Host Team" {
		t.Fatalf("expected host team, got %+v ok=%v", home, ok)
	}
	away, ok := comp.AwayCompetitor()
	if !ok || away.Team.DisplayName != "Road Team" {
		t.Fatalf("expected road team, got %+v ok=%v", away, ok)
	}
}

func TestCompetitionSideLookupMissing(t *testing.T) {
	comp := Competition{Competitors: []Competitor{{HomeAway: "away"}}}
	if _, ok := comp.HomeCompetitor(); ok {
		t.Fatal("expected no home competitor")
	}

	empty := Competition{}
	if _, ok := empty.AwayCompetitor(); ok {
		t.Fatal("expected no away competitor on empty competition")
	}
}
