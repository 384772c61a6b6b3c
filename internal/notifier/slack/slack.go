package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/notifier"
	"github.com/slack-go/slack"
)

// maxListedFailures bounds the failures listed in one report message.
const maxListedFailures = 10

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendImportReport(report *importer.Report, dryRun bool) error {
	msg := s.formatImportReport(report)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendRefreshFailure(cause error, dryRun bool) error {
	msg := s.formatRefreshFailure(cause)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatImportReport creates the Slack message for a finished import using Block Kit.
func (s *Notifier) formatImportReport(report *importer.Report) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "Player stats refreshed", false, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("*Imported:* %d\n*Skipped:* %d\n*Players stored:* %d\n*Duration:* %dms", report.Imported, report.Skipped, report.Total, report.DurationMs)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", detailsText, false, false), nil, nil))

	if len(report.Failures) > 0 {
		var lines []string
		for i, f := range report.Failures {
			if i == maxListedFailures {
				lines = append(lines, fmt.Sprintf("… and %d more", len(report.Failures)-maxListedFailures))
				break
			}
			if f.Field != "" {
				lines = append(lines, fmt.Sprintf("• Row %d (%s): %s", f.Row, f.Field, f.Reason))
			} else {
				lines = append(lines, fmt.Sprintf("• Row %d: %s", f.Row, f.Reason))
			}
		}
		failuresText := "*Skipped rows:*\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", failuresText, false, false), nil, nil))
	}

	contextText := fmt.Sprintf("Run %s", report.RunID)
	if report.Source != "" {
		contextText += " from " + report.Source
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", contextText, false, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatRefreshFailure creates the Slack message for a refresh run that imported nothing.
func (s *Notifier) formatRefreshFailure(cause error) slack.Message {
	headerText := slack.NewTextBlockObject("plain_text", "Player stats refresh failed", false, false)
	bodyText := slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("```%s```", cause), false, false)
	return slack.NewBlockMessage(
		slack.NewHeaderBlock(headerText),
		slack.NewSectionBlock(bodyText, nil, nil),
	)
}
