package slack

import (
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/slack-go/slack"
)

// SlackClient is a wrapper around the official slack-go client.
type SlackClient struct {
	api       *slack.Client
	channelID string
	metrics   metrics.Metrics
}

// DefaultLeaderboardSize is how many players a leaderboard message lists.
const DefaultLeaderboardSize = 10
