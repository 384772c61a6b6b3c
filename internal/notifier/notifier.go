package notifier

import "github.com/mauv0809/rally-metrics/internal/importer"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a successful import run
	SendImportReport(report *importer.Report, dryRun bool) error
	// When a refresh run could not import at all
	SendRefreshFailure(cause error, dryRun bool) error
}
