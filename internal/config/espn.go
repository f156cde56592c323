package config

import "time"

const (
	envEspnBaseURL = "ESPN_BASE_URL"
	envEspnLimit   = "ESPN_LIMIT"
	envHTTPTimeout = "HTTP_TIMEOUT"

	defaultEspnBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"
	defaultEspnLimit   = 100
)

// ESPNConfig controls how we talk to the ESPN site API.
type ESPNConfig struct {
	BaseURL string
	Limit   int
	Timeout time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
		Limit:   intEnvOrDefault(envEspnLimit, defaultEspnLimit),
		Timeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
