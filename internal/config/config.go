package config

// Config holds runtime configuration for a single exploration run.
type Config struct {
	Provider string
	Season   SeasonConfig
	ESPN     ESPNConfig
	Output   OutputConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Running with nothing set reproduces the stock behavior: current week of
// the default season, ESPN site API, output under sample_responses/.
func Load() Config {
	return Config{
		Provider: envOrDefault(envProvider, defaultProvider),
		Season:   loadSeason(),
		ESPN:     loadESPN(),
		Output:   loadOutput(),
		Metrics:  loadMetrics(),
	}
}
