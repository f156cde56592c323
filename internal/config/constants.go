package config

import "time"

const (
	envProvider     = "PROVIDER"
	envSeasonYear   = "SEASON_YEAR"
	envSeasonWeek   = "SEASON_WEEK"
	envOutputDir    = "OUTPUT_DIR"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider   = "espn"
	defaultSeasonYear = 2024
	// Week 0 defers to the endpoint's own current-week default.
	defaultSeasonWeek = 0
	defaultOutputDir  = "sample_responses"
	// One page covers a full NFL week; limit 100 leaves plenty of headroom.
	defaultHTTPTimeout = 10 * Duration(time.Second)
)
