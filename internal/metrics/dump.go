package metrics

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// LogSummary writes one log line per gathered metric family. A one-shot
// run has no scrape endpoint, so the counters land in the log at exit
// instead.
func LogSummary(gatherer prometheus.Gatherer, logger *slog.Logger) {
	if gatherer == nil || logger == nil {
		return
	}

	families, err := gatherer.Gather()
	if err != nil {
		logger.Error("metrics gather failed", "error", err)
		return
	}

	for _, mf := range families {
		logger.Info("metric",
			slog.String("name", mf.GetName()),
			slog.Int("series", len(mf.GetMetric())),
		)
	}
}
