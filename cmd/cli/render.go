package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	upStyle     = cellStyle.Foreground(lipgloss.Color("#52C41A"))
	downStyle   = cellStyle.Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func trendLabel(p standings.RankedPlayer) string {
	switch p.Trend {
	case standings.TrendUp:
		return "▲ " + p.Movement()
	case standings.TrendDown:
		return "▼ " + p.Movement()
	case standings.TrendSame:
		return "="
	}
	return "-"
}

func renderPlayers(players []standings.RankedPlayer) string {
	if len(players) == 0 {
		return "No valid matches yet."
	}
	rows := make([][]string, len(players))
	for i, p := range players {
		rows[i] = []string{
			strconv.Itoa(p.Rank),
			p.Name,
			fmt.Sprintf("%.2f", p.Points),
			fmt.Sprintf("%d/%d", p.Wins, p.MatchesPlayed),
			fmt.Sprintf("%d:%d", p.SetsWon, p.SetsLost),
			trendLabel(p),
		}
	}

	return newTable("#", "Player", "Points", "Wins", "Sets", "Trend").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 5 {
				switch players[row].Trend {
				case standings.TrendUp:
					return upStyle
				case standings.TrendDown:
					return downStyle
				}
			}
			return cellStyle
		}).
		Rows(rows...).
		String()
}

func renderTeams(teams []standings.TeamStanding) string {
	if len(teams) == 0 {
		return "No valid matches yet."
	}
	rows := make([][]string, len(teams))
	for i, t := range teams {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			t.Team,
			fmt.Sprintf("%d%%", t.WinRatePercent),
			fmt.Sprintf("%d-%d", t.Wins, t.Losses),
			strconv.Itoa(t.MatchesPlayed),
			fmt.Sprintf("%d:%d", t.SetsWon, t.SetsLost),
		}
	}
	return newTable("#", "Team", "Win rate", "W-L", "Played", "Sets").
		StyleFunc(plainStyle).
		Rows(rows...).
		String()
}

func renderProfile(profile *standings.Profile) string {
	var b strings.Builder
	s := profile.Standing
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("%s, rank %d", profile.Name, profile.Rank)))
	fmt.Fprintf(&b, "Points: %.2f | Wins: %d/%d | Sets: %d:%d\n", s.Points, s.Wins, s.MatchesPlayed, s.SetsWon, s.SetsLost)

	rows := make([][]string, len(profile.Matches))
	for i, pm := range profile.Matches {
		m := pm.Match
		result := "L"
		if pm.Won {
			result = "W"
		}
		rows[i] = []string{
			m.Date.String(),
			result,
			fmt.Sprintf("%d:%d", m.Score[pm.Side], m.Score[padel.Opponent(pm.Side)]),
			strings.Join(m.Players[padel.Opponent(pm.Side)], standings.TeamSeparator),
		}
	}
	b.WriteString(newTable("Date", "Result", "Score", "Opponents").StyleFunc(plainStyle).Rows(rows...).String())
	return b.String()
}

func renderResults(days []standings.MatchDay) string {
	if len(days) == 0 {
		return "No matches recorded."
	}
	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintln(&b, titleStyle.Render(day.Date.String()))
		for _, m := range day.Matches {
			fmt.Fprintf(&b, "  %s  %d:%d  %s\n",
				strings.Join(m.Players[0], standings.TeamSeparator), m.Score[0], m.Score[1], strings.Join(m.Players[1], standings.TeamSeparator))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func plainStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
