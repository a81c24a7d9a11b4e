// Package export writes standings to spreadsheet workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/mauv0809/padwell/internal/standings"
	"github.com/xuri/excelize/v2"
)

const (
	PlayersSheet = "Players"
	TeamsSheet   = "Teams"
)

var (
	playerHeader = []any{"Rank", "Player", "Points", "Matches", "Wins", "Losses", "Sets Won", "Sets Lost", "Trend", "Change"}
	teamHeader   = []any{"Rank", "Team", "Win Rate %", "Matches", "Wins", "Losses", "Sets Won", "Sets Lost"}
)

// WriteStandings writes an xlsx workbook with a Players sheet and a Teams sheet, one
// header row each followed by the standings in leaderboard order.
func WriteStandings(w io.Writer, players []standings.RankedPlayer, teams []standings.TeamStanding) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PlayersSheet); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if _, err := f.NewSheet(TeamsSheet); err != nil {
		return fmt.Errorf("failed to create teams sheet: %w", err)
	}

	playerRows := make([][]any, 0, len(players)+1)
	playerRows = append(playerRows, playerHeader)
	for _, p := range players {
		playerRows = append(playerRows, []any{
			p.Rank, p.Name, p.Points, p.MatchesPlayed, p.Wins, p.Losses, p.SetsWon, p.SetsLost, string(p.Trend), p.Movement(),
		})
	}
	if err := writeRows(f, PlayersSheet, playerRows); err != nil {
		return err
	}

	teamRows := make([][]any, 0, len(teams)+1)
	teamRows = append(teamRows, teamHeader)
	for i, t := range teams {
		teamRows = append(teamRows, []any{
			i + 1, t.Team, t.WinRatePercent, t.MatchesPlayed, t.Wins, t.Losses, t.SetsWon, t.SetsLost,
		})
	}
	if err := writeRows(f, TeamsSheet, teamRows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
