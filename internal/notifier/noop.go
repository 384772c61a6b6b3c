package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/rally-metrics/internal/importer"
)

// Noop logs notifications instead of sending them. It is used when no Slack
// token is configured.
type Noop struct{}

var _ Notifier = Noop{}

func (Noop) SendImportReport(report *importer.Report, dryRun bool) error {
	log.Debug("Notifications disabled, skipping import report", "run_id", report.RunID)
	return nil
}

func (Noop) SendRefreshFailure(cause error, dryRun bool) error {
	log.Debug("Notifications disabled, skipping refresh failure", "error", cause)
	return nil
}
