package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/mauv0809/rally-metrics/internal/prediction"
	"github.com/mauv0809/rally-metrics/internal/query"
	"github.com/mauv0809/rally-metrics/internal/refresh"
)

// maxBodyBytes bounds JSON and CSV request bodies.
const maxBodyBytes = 4 << 20

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		if err := s.Store.Ping(); err != nil {
			log.Error("Health check failed", "error", err)
			http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// UploadHandler imports a CSV request body when one is sent as text/csv,
// otherwise the bundled stats file.
func (s *Server) UploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			report *importer.Report
			err    error
		)
		if strings.HasPrefix(r.Header.Get("Content-Type"), "text/csv") {
			log.Info("Importing players from request body")
			report, err = s.Importer.Import(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		} else {
			log.Info("Importing players from bundled stats file", "path", s.Cfg.StatsCSVPath)
			report, err = s.Importer.ImportFile(s.Cfg.StatsCSVPath)
		}
		if err != nil {
			var unavailable *importer.SourceUnavailableError
			switch {
			case errors.Is(err, os.ErrNotExist):
				log.Error("Stats file not found", "path", s.Cfg.StatsCSVPath, "error", err)
				http.Error(w, "CSV file not found", http.StatusNotFound)
			case errors.As(err, &unavailable):
				log.Error("Stats source unavailable", "error", err)
				http.Error(w, "CSV source could not be read", http.StatusBadRequest)
			default:
				log.Error("Import failed", "error", err)
				http.Error(w, "Import failed", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		players, err := s.Query.Dispatch(query.Params{
			Team:       q.Get("team"),
			Name:       q.Get("name"),
			SearchText: q.Get("searchText"),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) SearchPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Query.ByNameOrTeam(r.URL.Query().Get("name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) SummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := nameParam(r)
		if err != nil {
			http.Error(w, "Invalid player name", http.StatusBadRequest)
			return
		}
		log.Info("Generating player summary", "player", name)
		text, err := s.Summaries.SummaryForPlayer(r.Context(), name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, text)
	}
}

func (s *Server) PredictHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchupRequest
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.PlayerA == "" || req.PlayerB == "" {
			http.Error(w, "playerA and playerB are required", http.StatusBadRequest)
			return
		}

		log.Info("Generating matchup summary", "player_a", req.PlayerA, "player_b", req.PlayerB)
		text, err := s.Summaries.SummaryForMatchup(r.Context(), req.PlayerA, req.PlayerB)
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, text)
	}
}

func (s *Server) OddsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, b := r.URL.Query().Get("playerA"), r.URL.Query().Get("playerB")
		if a == "" || b == "" {
			http.Error(w, "playerA and playerB are required", http.StatusBadRequest)
			return
		}
		pred, err := s.Summaries.Predict(a, b)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pred)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p player.Player
		if err := decodeJSON(w, r, &p); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if p.GamesWon < 0 || p.GamesLost < 0 || p.PtsWon < 0 || p.PtsLost < 0 {
			http.Error(w, "counts must not be negative", http.StatusBadRequest)
			return
		}

		if err := s.ifNotDryRun(r, func() error { return s.Store.Upsert(p) }); err != nil {
			writeError(w, err)
			return
		}
		log.Info("Player saved", "player", p.Name)
		writeJSON(w, http.StatusCreated, p)
	}
}

// UpdatePlayerHandler changes the team of an existing player. Other fields are
// left as stored.
func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update teamUpdate
		if err := decodeJSON(w, r, &update); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		existing, err := s.Store.FindByName(update.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		existing.Team = update.Team

		if err := s.ifNotDryRun(r, func() error { return s.Store.Upsert(*existing) }); err != nil {
			writeError(w, err)
			return
		}
		log.Info("Player updated", "player", existing.Name, "team", existing.Team)
		writeJSON(w, http.StatusOK, existing)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := nameParam(r)
		if err != nil {
			http.Error(w, "Invalid player name", http.StatusBadRequest)
			return
		}
		if err := s.ifNotDryRun(r, func() error { return s.Store.DeleteByName(name) }); err != nil {
			writeError(w, err)
			return
		}
		log.Info("Player deleted", "player", name)
		writeText(w, http.StatusOK, "Player deleted successfully")
	}
}

// nameParam returns the decoded {name} path segment. chi matches on the raw
// path when it is set, so an escaped "/" arrives still encoded.
func nameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}

// RunRefreshHandler fires the stats refresh immediately. The run is not
// cancelled when the client disconnects.
func (s *Server) RunRefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.Refresh.Run(context.WithoutCancel(r.Context()), isDryRunFromContext(r))
		if err != nil {
			var cmdErr *refresh.CommandError
			switch {
			case errors.Is(err, refresh.ErrRunInProgress):
				http.Error(w, "Refresh already in progress", http.StatusConflict)
			case errors.As(err, &cmdErr):
				http.Error(w, "Refresh command failed", http.StatusBadGateway)
			default:
				log.Error("Manual refresh failed", "error", err)
				http.Error(w, "Refresh failed", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// ifNotDryRun runs write unless the request is a dry run.
func (s *Server) ifNotDryRun(r *http.Request, write func() error) error {
	if isDryRunFromContext(r) {
		log.Info("[Dry Run] Skipping store write", "method", r.Method, "path", r.URL.Path)
		return nil
	}
	return write()
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		log.Warn("Failed to decode request body", "error", err)
		return err
	}
	return nil
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	var invalid *prediction.InvalidStatsError
	switch {
	case errors.Is(err, player.ErrPlayerNotFound):
		http.Error(w, "Player not found", http.StatusNotFound)
	case errors.As(err, &invalid):
		http.Error(w, invalid.Error(), http.StatusUnprocessableEntity)
	default:
		log.Error("Request failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, text)
}
