package espn

import "time"

const providerName = "espn"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"
	defaultLimit       = 100
	defaultHTTPTimeout = 10 * time.Second
	// ESPN season-type codes: 2 = regular season, 3 = playoffs.
	seasonTypeRegular = "2"
	maxErrExcerpt     = 512
)
