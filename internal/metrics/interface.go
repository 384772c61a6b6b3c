package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncImportRuns()
	AddPlayersImported(n int)
	AddRowFailures(n int)
	ObserveImportDuration(seconds float64)
	IncSummaryRequests()
	IncSummaryFallbacks()
	IncSummaryCacheHits()
	IncPredictions()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(seconds float64)
}
