package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	ImportRuns         prometheus.Counter
	PlayersImported    prometheus.Counter
	ImportRowFailures  prometheus.Counter
	ImportDuration     prometheus.Histogram
	SummaryRequests    prometheus.Counter
	SummaryFallbacks   prometheus.Counter
	SummaryCacheHits   prometheus.Counter
	Predictions        prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
