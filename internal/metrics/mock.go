package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	importRuns       int
	playersImported  int
	rowFailures      int
	importDurations  []float64
	summaryRequests  int
	summaryFallbacks int
	summaryCacheHits int
	predictions      int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		importDurations: make([]float64, 0),
	}
}

func (m *Mock) IncImportRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importRuns++
}

func (m *Mock) AddPlayersImported(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersImported += n
}

func (m *Mock) AddRowFailures(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rowFailures += n
}

func (m *Mock) ObserveImportDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importDurations = append(m.importDurations, seconds)
}

func (m *Mock) IncSummaryRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaryRequests++
}

func (m *Mock) IncSummaryFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaryFallbacks++
}

func (m *Mock) IncSummaryCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaryCacheHits++
}

func (m *Mock) IncPredictions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictions++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// ImportRuns returns the number of times IncImportRuns was called.
func (m *Mock) ImportRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.importRuns
}

// PlayersImported returns the running total passed to AddPlayersImported.
func (m *Mock) PlayersImported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersImported
}

// RowFailures returns the running total passed to AddRowFailures.
func (m *Mock) RowFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rowFailures
}

// ImportDurations returns every observed import duration.
func (m *Mock) ImportDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.importDurations))
	copy(out, m.importDurations)
	return out
}

// SummaryRequests returns the number of times IncSummaryRequests was called.
func (m *Mock) SummaryRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summaryRequests
}

// SummaryFallbacks returns the number of times IncSummaryFallbacks was called.
func (m *Mock) SummaryFallbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summaryFallbacks
}

// SummaryCacheHits returns the number of times IncSummaryCacheHits was called.
func (m *Mock) SummaryCacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summaryCacheHits
}

// Predictions returns the number of times IncPredictions was called.
func (m *Mock) Predictions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.predictions
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
