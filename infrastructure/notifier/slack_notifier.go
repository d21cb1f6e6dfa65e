// Package notifier provides notification service implementations.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"theta-oracle-keeper/domain/interfaces"
)

// slackMessage is the Slack webhook payload.
type slackMessage struct {
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

// slackNotifier implements the Notifier interface for Slack.
type slackNotifier struct {
	webhookURL string
	channel    string
	logger     interfaces.Logger
	httpClient *http.Client
}

// NewSlackNotifier creates a new Slack notifier. An empty webhook URL
// yields an unconfigured notifier that drops all alerts.
func NewSlackNotifier(webhookURL, channel string, logger interfaces.Logger) interfaces.Notifier {
	return &slackNotifier{
		webhookURL: webhookURL,
		channel:    channel,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyUpdateFailure reports a failed update attempt to Slack.
func (n *slackNotifier) NotifyUpdateFailure(ctx context.Context, oracleID string, errMessage string) error {
	if !n.IsConfigured() {
		return fmt.Errorf("slack notifier not configured")
	}

	message := slackMessage{
		Channel: n.channel,
		Text:    fmt.Sprintf(":warning: oracle update failed\noracle: `%s`\nerror: %s", oracleID, errMessage),
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned status %d", resp.StatusCode)
	}

	n.logger.Debug("Sent failure alert", "oracle", oracleID)
	return nil
}

// IsConfigured reports whether a webhook URL is set.
func (n *slackNotifier) IsConfigured() bool {
	return n.webhookURL != ""
}
