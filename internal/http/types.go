package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/rally-metrics/internal/config"
	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/mauv0809/rally-metrics/internal/query"
	"github.com/mauv0809/rally-metrics/internal/refresh"
	"github.com/mauv0809/rally-metrics/internal/summary"
)

type Server struct {
	Store          player.PlayerStore
	Importer       *importer.Pipeline
	Query          *query.Engine
	Summaries      *summary.Service
	Refresh        refresh.Trigger
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *chi.Mux
}

// matchupRequest is the body of a predict request.
type matchupRequest struct {
	PlayerA string `json:"playerA"`
	PlayerB string `json:"playerB"`
}

// teamUpdate is the body of a player update: only the team of the named player changes.
type teamUpdate struct {
	Name string `json:"name"`
	Team string `json:"team"`
}
