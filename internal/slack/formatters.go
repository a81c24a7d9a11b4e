package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
	"github.com/slack-go/slack"
)

const updatedAtLayout = "Monday 02 Jan, 15:04"

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func trendMarker(p standings.RankedPlayer) string {
	switch p.Trend {
	case standings.TrendUp:
		return "⬆️ " + p.Movement()
	case standings.TrendDown:
		return "⬇️ " + p.Movement()
	}
	return ""
}

func footer(updatedAt *time.Time) slack.Block {
	updated := "Updated: no data"
	if updatedAt != nil {
		updated = "Updated: " + updatedAt.Format(updatedAtLayout)
	}
	return slack.NewContextBlock("",
		slack.NewTextBlockObject("plain_text", updated, true, false),
		slack.NewTextBlockObject("plain_text", standings.ScoringLegend(), true, false),
	)
}

// FormatLeaderboard creates a Slack message showing the top limit players with their
// movement since the previous snapshot.
func FormatLeaderboard(report *standings.Report, limit int) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Player Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(report.Players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats available yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	players := report.Players
	if limit > 0 && len(players) > limit {
		players = players[:limit]
	}
	for _, p := range players {
		title := strings.Join(strings.Fields(fmt.Sprintf("%d. %s %s %s", p.Rank, medal(p.Rank), p.Name, trendMarker(p))), " ")
		playerText := fmt.Sprintf("%s\n> Points: %.2f | Wins: %d/%d | Sets: %d:%d",
			title,
			p.Points,
			p.Wins,
			p.MatchesPlayed,
			p.SetsWon,
			p.SetsLost,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	blocks = append(blocks, footer(report.UpdatedAt))
	return slack.NewBlockMessage(blocks...)
}

// FormatTeamLeaderboard creates a Slack message showing the top limit pairings.
func FormatTeamLeaderboard(teams []standings.TeamStanding, limit int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🤝 Team Leaderboard 🤝", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(teams) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No teams have played yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	if limit > 0 && len(teams) > limit {
		teams = teams[:limit]
	}
	for i, team := range teams {
		teamText := fmt.Sprintf("%d. %s\n> Win rate: %d%% (%d/%d) | Sets: %d:%d",
			i+1,
			team.Team,
			team.WinRatePercent,
			team.Wins,
			team.MatchesPlayed,
			team.SetsWon,
			team.SetsLost,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", teamText, true, false), nil, nil))
	}
	return slack.NewBlockMessage(blocks...)
}

// FormatPlayerStats creates a Slack message to display a single player's stats and
// their most recent matches.
func FormatPlayerStats(profile *standings.Profile, recent int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", profile.Name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	s := profile.Standing
	playerText := fmt.Sprintf("> *Rank*: %d\n> *Points*: %.2f\n> *Wins*: %d/%d\n> *Sets*: %d:%d",
		profile.Rank,
		s.Points,
		s.Wins,
		s.MatchesPlayed,
		s.SetsWon,
		s.SetsLost,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	matches := profile.Matches
	if recent > 0 && len(matches) > recent {
		matches = matches[:recent]
	}
	if len(matches) > 0 {
		lines := make([]string, 0, len(matches))
		for _, pm := range matches {
			result := "❌"
			if pm.Won {
				result = "✅"
			}
			m := pm.Match
			opp := padel.Opponent(pm.Side)
			lines = append(lines, fmt.Sprintf("%s %s %s vs %s (%d:%d)",
				result,
				m.Date,
				strings.Join(m.Players[pm.Side], standings.TeamSeparator),
				strings.Join(m.Players[opp], standings.TeamSeparator),
				m.Score[pm.Side],
				m.Score[opp],
			))
		}
		recentText := "Recent matches:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", recentText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// FormatPlayerNotFound creates a Slack message for when a player's stats are not found.
func FormatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
