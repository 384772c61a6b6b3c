package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ImportRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_import_runs_total",
			Help: "The total number of CSV import runs.",
		}),
		PlayersImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_players_imported_total",
			Help: "The total number of player rows upserted by imports.",
		}),
		ImportRowFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_import_row_failures_total",
			Help: "The total number of rows skipped by imports.",
		}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rally_import_duration_seconds",
			Help:    "The duration of a full import run.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SummaryRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_summary_requests_total",
			Help: "The total number of summaries requested from the text generator.",
		}),
		SummaryFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_summary_fallbacks_total",
			Help: "The total number of summaries answered with the fallback text.",
		}),
		SummaryCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_summary_cache_hits_total",
			Help: "The total number of summaries served from the cache.",
		}),
		Predictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_predictions_total",
			Help: "The total number of matchup predictions computed.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rally_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rally_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ImportRuns,
		s.PlayersImported,
		s.ImportRowFailures,
		s.ImportDuration,
		s.SummaryRequests,
		s.SummaryFallbacks,
		s.SummaryCacheHits,
		s.Predictions,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncImportRuns() {
	s.ImportRuns.Inc()
}

func (s *Service) AddPlayersImported(n int) {
	s.PlayersImported.Add(float64(n))
}

func (s *Service) AddRowFailures(n int) {
	s.ImportRowFailures.Add(float64(n))
}

func (s *Service) ObserveImportDuration(seconds float64) {
	s.ImportDuration.Observe(seconds)
}

func (s *Service) IncSummaryRequests() {
	s.SummaryRequests.Inc()
}

func (s *Service) IncSummaryFallbacks() {
	s.SummaryFallbacks.Inc()
}

func (s *Service) IncSummaryCacheHits() {
	s.SummaryCacheHits.Inc()
}

func (s *Service) IncPredictions() {
	s.Predictions.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
