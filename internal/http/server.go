package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mauv0809/rally-metrics/internal/config"
	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/mauv0809/rally-metrics/internal/query"
	"github.com/mauv0809/rally-metrics/internal/refresh"
	"github.com/mauv0809/rally-metrics/internal/summary"
)

func NewServer(store player.PlayerStore, pipeline *importer.Pipeline, engine *query.Engine, summaries *summary.Service, trigger refresh.Trigger, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Importer:       pipeline,
		Query:          engine,
		Summaries:      summaries,
		Refresh:        trigger,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Method(http.MethodGet, "/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Method(http.MethodGet, "/debug/run-script", Chain(s.RunRefreshHandler(), paramsMiddleware))

	s.Router.Route("/api/v1/player", func(r chi.Router) {
		r.Method(http.MethodGet, "/", Chain(s.ListPlayersHandler(), paramsMiddleware))
		r.Method(http.MethodPost, "/", Chain(s.CreatePlayerHandler(), paramsMiddleware))
		r.Method(http.MethodPut, "/", Chain(s.UpdatePlayerHandler(), paramsMiddleware))
		r.Method(http.MethodPost, "/upload", Chain(s.UploadHandler(), paramsMiddleware))
		r.Method(http.MethodGet, "/search", Chain(s.SearchPlayersHandler(), paramsMiddleware))
		r.Method(http.MethodPost, "/predict", Chain(s.PredictHandler(), paramsMiddleware))
		r.Method(http.MethodGet, "/odds", Chain(s.OddsHandler(), paramsMiddleware))
		r.Method(http.MethodGet, "/{name}/summary", Chain(s.SummaryHandler(), paramsMiddleware))
		r.Method(http.MethodDelete, "/{name}", Chain(s.DeletePlayerHandler(), paramsMiddleware))
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
