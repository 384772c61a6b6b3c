package slack

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleReport() *importer.Report {
	return &importer.Report{
		RunID:    "run-1",
		Source:   "data/mlp_stats.csv",
		Imported: 2,
		Skipped:  1,
		Total:    12,
		Failures: []importer.RowFailure{
			{Row: 2, Field: "Games Won", Reason: `row 2: invalid Games Won "lots": invalid syntax`},
		},
		DurationMs: 12,
	}
}

func sectionTexts(msg slackapi.Message) []string {
	var out []string
	for _, b := range msg.Blocks.BlockSet {
		if section, ok := b.(*slackapi.SectionBlock); ok && section.Text != nil {
			out = append(out, section.Text.Text)
		}
	}
	return out
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	err := notifier.SendImportReport(sampleReport(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendImportReport(sampleReport(), false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendRefreshFailure(errors.New("stats source unavailable"), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestFormatImportReport(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatImportReport(sampleReport())

	require.Len(t, msg.Blocks.BlockSet, 4)
	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "Player stats refreshed", header.Text.Text)

	texts := sectionTexts(msg)
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "*Imported:* 2")
	assert.Contains(t, texts[0], "*Skipped:* 1")
	assert.Contains(t, texts[0], "*Players stored:* 12")
	assert.Contains(t, texts[1], "Row 2 (Games Won)")
}

func TestFormatImportReport_TruncatesFailures(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())
	report := sampleReport()
	report.Failures = nil
	for i := 1; i <= maxListedFailures+5; i++ {
		report.Failures = append(report.Failures, importer.RowFailure{Row: i, Reason: fmt.Sprintf("bad row %d", i)})
	}

	texts := sectionTexts(notifier.formatImportReport(report))
	require.Len(t, texts, 2)
	assert.Contains(t, texts[1], "and 5 more")
	assert.NotContains(t, texts[1], "bad row 11")
}

func TestFormatImportReport_NoFailures(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())
	report := sampleReport()
	report.Failures = []importer.RowFailure{}

	msg := notifier.formatImportReport(report)
	assert.Len(t, msg.Blocks.BlockSet, 3)
}
