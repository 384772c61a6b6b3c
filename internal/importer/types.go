package importer

import (
	"time"

	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/player"
)

// Pipeline imports CSV season stats into the player store.
type Pipeline struct {
	store   player.PlayerStore
	metrics metrics.Metrics
}

// RowFailure is one data row that was not imported.
type RowFailure struct {
	Row    int    `json:"row"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// Report summarises one import run.
type Report struct {
	RunID      string       `json:"run_id"`
	Source     string       `json:"source,omitempty"`
	Imported   int          `json:"imported"`
	Skipped    int          `json:"skipped"`
	Total      int          `json:"total_players"`
	Failures   []RowFailure `json:"failures"`
	StartedAt  time.Time    `json:"started_at"`
	DurationMs int64        `json:"duration_ms"`
}
