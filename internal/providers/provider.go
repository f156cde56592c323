package providers

import (
	"context"

	"github.com/kvckarthik/sportsData/internal/domain"
)

// Query selects which slice of the schedule to fetch. Week 0 leaves the
// choice to the upstream endpoint, which serves its notion of the
// current week.
type Query struct {
	Year int
	Week int
}

// ScoreboardProvider defines how an upstream weekly scoreboard is fetched.
// Implementations return the decoded document together with the raw bytes
// so callers can persist and inspect the exact payload received.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, q Query) (domain.Document, error)
}
