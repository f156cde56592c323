// Package fixture serves a canned scoreboard document for offline runs
// and end-to-end tests: no network, deterministic content.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kvckarthik/sportsData/internal/domain"
	"github.com/kvckarthik/sportsData/internal/providers"
)

// Document is the raw payload the fixture provider serves. One fully
// populated game plus one empty event, so every defaulting path in the
// summary renderer is exercised.
const Document = `{
  "leagues": [
    {
      "id": "28",
      "name": "National Football League",
      "abbreviation": "NFL"
    }
  ],
  "season": {
    "year": 2024,
    "type": 2
  },
  "week": {
    "number": 1
  },
  "events": [
    {
      "id": "401671789",
      "uid": "s:20~l:28~e:401671789",
      "name": "Pittsburgh Steelers at Atlanta Falcons",
      "date": "2024-09-08T17:00Z",
      "status": {
        "type": {
          "description": "Scheduled"
        }
      },
      "competitions": [
        {
          "id": "401671789",
          "competitors": [
            {
              "homeAway": "home",
              "team": {
                "id": "1",
                "displayName": "Atlanta Falcons",
                "abbreviation": "ATL"
              }
            },
            {
              "homeAway": "away",
              "team": {
                "id": "23",
                "displayName": "Pittsburgh Steelers",
                "abbreviation": "PIT"
              }
            }
          ]
        }
      ]
    },
    {}
  ]
}`

// Provider returns the static scoreboard document regardless of query.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchScoreboard decodes and returns the canned document.
func (p *Provider) FetchScoreboard(ctx context.Context, q providers.Query) (domain.Document, error) {
	_ = ctx
	_ = q

	raw := []byte(Document)
	var sb domain.Scoreboard
	if err := json.Unmarshal(raw, &sb); err != nil {
		return domain.Document{}, fmt.Errorf("fixture: invalid document: %w", err)
	}
	return domain.Document{Scoreboard: sb, Raw: raw}, nil
}
