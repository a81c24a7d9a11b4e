package slack

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/slack-go/slack"
)

// ErrNotConfigured is returned when no bot token or channel is set.
var ErrNotConfigured = errors.New("slack client or channel ID is not configured")

// NewClient creates a new Slack client wrapper. An empty token yields a client that
// refuses to send.
func NewClient(token, channelID string, metrics metrics.Metrics) *SlackClient {
	var api *slack.Client
	if token != "" {
		api = slack.New(token)
	}
	return NewClientWithAPI(api, channelID, metrics)
}

// NewClientWithAPI creates a new Slack client with a custom API client. Used for testing.
func NewClientWithAPI(api *slack.Client, channelID string, metrics metrics.Metrics) *SlackClient {
	return &SlackClient{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// Configured reports whether messages can be posted.
func (c *SlackClient) Configured() bool {
	return c != nil && c.api != nil && c.channelID != ""
}

// SendMessage posts message to the configured channel and returns the channel and
// timestamp of the posted message.
func (c *SlackClient) SendMessage(ctx context.Context, message slack.Message, dryRun bool) (string, string, error) {
	if !c.Configured() {
		log.Warn("Slack client or channel ID is not configured. Skipping message.")
		return "", "", ErrNotConfigured
	}

	if dryRun {
		log.Info("Dry run mode: Slack message not sent.", "msg", message)
		return "", "", nil
	}

	channel, ts, err := c.api.PostMessageContext(ctx, c.channelID, slack.MsgOptionBlocks(message.Blocks.BlockSet...))
	if err != nil {
		log.Error("Failed to send Slack message", "error", err)
		return "", "", err
	}
	if c.metrics != nil {
		c.metrics.IncSlackMessagesSent()
	}
	log.Info("Posted Slack message", "channel", channel, "ts", ts)
	return channel, ts, nil
}
