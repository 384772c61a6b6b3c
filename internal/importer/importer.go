package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/player"
)

// New creates a new import Pipeline.
func New(store player.PlayerStore, metrics metrics.Metrics) *Pipeline {
	return &Pipeline{
		store:   store,
		metrics: metrics,
	}
}

// ImportFile opens path and imports it. A missing or unreadable file is a
// *SourceUnavailableError.
func (p *Pipeline) ImportFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Source: path, Err: err}
	}
	defer f.Close()

	return p.importFrom(path, f)
}

// Import reads a CSV source with a header row and upserts every valid data row.
// Row failures are collected in the report and never stop the run; only an
// absent or unreadable source returns an error.
func (p *Pipeline) Import(source io.Reader) (*Report, error) {
	return p.importFrom("", source)
}

func (p *Pipeline) importFrom(name string, source io.Reader) (*Report, error) {
	if source == nil {
		return nil, &SourceUnavailableError{Source: name, Err: errors.New("no source provided")}
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Source:    name,
		Failures:  []RowFailure{},
		StartedAt: time.Now(),
	}
	log.Info("Starting player import", "run_id", report.RunID, "source", name)
	p.metrics.IncImportRuns()

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptySource
		}
		return nil, &SourceUnavailableError{Source: name, Err: err}
	}
	layout, ok := LayoutFromHeader(header)
	if !ok {
		log.Warn("Header does not name every column, falling back to positional order", "header", header, "expected", Headers())
		layout = DefaultLayout()
	}

	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, &SourceUnavailableError{Source: name, Err: err}
			}
			report.fail(RowFailure{Row: row, Reason: err.Error()})
			continue
		}

		pl, err := ParseRecord(row, record, layout)
		if err != nil {
			report.fail(failureFor(row, err))
			continue
		}
		warnOnPercentRange(row, pl)

		if err := p.store.Upsert(pl); err != nil {
			report.fail(RowFailure{Row: row, Reason: fmt.Sprintf("store: %v", err)})
			continue
		}
		report.Imported++
	}

	report.Skipped = len(report.Failures)
	if report.Total, err = p.store.Count(); err != nil {
		log.Warn("Failed to count stored players", "run_id", report.RunID, "error", err)
	}
	report.DurationMs = time.Since(report.StartedAt).Milliseconds()

	p.metrics.AddPlayersImported(report.Imported)
	p.metrics.AddRowFailures(report.Skipped)
	p.metrics.ObserveImportDuration(time.Since(report.StartedAt).Seconds())

	log.Info("Player import finished", "run_id", report.RunID, "imported", report.Imported, "skipped", report.Skipped, "total_players", report.Total, "duration_ms", report.DurationMs)
	return report, nil
}

func (r *Report) fail(f RowFailure) {
	log.Warn("Skipping row", "run_id", r.RunID, "row", f.Row, "field", f.Field, "reason", f.Reason)
	r.Failures = append(r.Failures, f)
}

func failureFor(row int, err error) RowFailure {
	var parseErr *RowParseError
	if errors.As(err, &parseErr) {
		return RowFailure{Row: row, Field: parseErr.Field, Reason: err.Error()}
	}
	return RowFailure{Row: row, Reason: err.Error()}
}

// Percentages are not validated on import; out of range values are only logged.
func warnOnPercentRange(row int, p player.Player) {
	for field, v := range map[string]float64{
		ColGamesWonPercent: p.GamesWonPercent,
		ColPtsWonPercent:   p.PtsWonPercent,
	} {
		if v < 0 || v > 1 {
			log.Warn("Percentage outside [0,1]", "row", row, "player", p.Name, "field", field, "value", v)
		}
	}
}
