package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		ServiceName:  envOrDefault(envOtelService, "nfl-scoreboard-explorer"),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
