package standings

import (
	"time"

	"github.com/mauv0809/padwell/internal/padel"
)

// PlayerStanding is one row of the player leaderboard.
type PlayerStanding struct {
	Name          string  `json:"name"`
	MatchesPlayed int     `json:"matches"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	SetsWon       int     `json:"setsWon"`
	SetsLost      int     `json:"setsLost"`
	Points        float64 `json:"points"`
}

// TeamStanding is one row of the team leaderboard. Team is the canonical identity of
// the pairing: the sorted member names joined with TeamSeparator.
type TeamStanding struct {
	Team           string   `json:"team"`
	Players        []string `json:"players"`
	MatchesPlayed  int      `json:"matches"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	SetsWon        int      `json:"setsWon"`
	SetsLost       int      `json:"setsLost"`
	WinRatePercent int      `json:"winRate"`
}

// Trend is the direction of a player's rank movement between two snapshots.
// The empty Trend means the player has no previous position.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

// RankedPlayer is a PlayerStanding with its position and movement.
type RankedPlayer struct {
	PlayerStanding
	Rank           int   `json:"rank"`
	Trend          Trend `json:"trend,omitempty"`
	PositionChange *int  `json:"positionChange,omitempty"`
}

// Report is everything the presentation layer needs for one request.
type Report struct {
	Players          []RankedPlayer `json:"players"`
	Teams            []TeamStanding `json:"teams"`
	Matches          []padel.Match  `json:"matches"`
	Skipped          int            `json:"skipped"`
	HistoryAvailable bool           `json:"historyAvailable"`
	UpdatedAt        *time.Time     `json:"updatedAt,omitempty"`
	Fingerprint      string         `json:"fingerprint"`

	// invalid counts the matches that failed validation, so a cached report can be
	// served with the current decode skips added back.
	invalid int
}

// MatchDay groups the matches played on one date.
type MatchDay struct {
	Date    padel.Date    `json:"date"`
	Matches []padel.Match `json:"matches"`
}

// PlayerMatch is a match seen from one player's side.
type PlayerMatch struct {
	Match padel.Match `json:"match"`
	Side  int         `json:"side"`
	Won   bool        `json:"won"`
}

// Profile is a single player's page: position, totals and match history.
type Profile struct {
	Name     string          `json:"name"`
	Rank     int             `json:"rank"`
	Standing *PlayerStanding `json:"standing,omitempty"`
	Matches  []PlayerMatch   `json:"matches"`
}
