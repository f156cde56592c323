package run

import (
	"log/slog"
	"net/http"

	"github.com/kvckarthik/sportsData/internal/config"
	"github.com/kvckarthik/sportsData/internal/providers"
	"github.com/kvckarthik/sportsData/internal/providers/espn"
	"github.com/kvckarthik/sportsData/internal/providers/fixture"
)

// buildProvider selects the scoreboard source by configured name.
// Unknown names fall back to the live ESPN client.
func buildProvider(cfg config.Config, logger *slog.Logger) providers.ScoreboardProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	default:
		return espn.NewClient(espn.Config{
			BaseURL:    cfg.ESPN.BaseURL,
			Limit:      cfg.ESPN.Limit,
			HTTPClient: &http.Client{Timeout: cfg.ESPN.Timeout},
			Logger:     logger,
		})
	}
}
