package notifier

import (
	"sync"

	"github.com/mauv0809/rally-metrics/internal/importer"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendImportReportFunc   func(report *importer.Report, dryRun bool) error
	SendRefreshFailureFunc func(cause error, dryRun bool) error

	// Call records
	SendImportReportCalls   []*importer.Report
	SendRefreshFailureCalls []error
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendImportReportCalls = nil
	m.SendRefreshFailureCalls = nil
}

func (m *Mock) SendImportReport(report *importer.Report, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendImportReportCalls = append(m.SendImportReportCalls, report)
	if m.SendImportReportFunc != nil {
		return m.SendImportReportFunc(report, dryRun)
	}
	return nil
}

func (m *Mock) SendRefreshFailure(cause error, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRefreshFailureCalls = append(m.SendRefreshFailureCalls, cause)
	if m.SendRefreshFailureFunc != nil {
		return m.SendRefreshFailureFunc(cause, dryRun)
	}
	return nil
}
