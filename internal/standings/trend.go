package standings

import (
	"fmt"

	"github.com/mauv0809/padwell/internal/padel"
)

// DiffRankings ranks current and compares each player's position with previous.
// previous may be nil, in which case every trend is unknown.
func DiffRankings(current, previous []PlayerStanding) []RankedPlayer {
	previousPositions := make(map[string]int, len(previous))
	for i, p := range previous {
		previousPositions[p.Name] = i
	}

	ranked := make([]RankedPlayer, len(current))
	for i, p := range current {
		ranked[i] = RankedPlayer{PlayerStanding: p, Rank: i + 1}

		prevIndex, ok := previousPositions[p.Name]
		if !ok {
			continue
		}
		change := prevIndex - i
		ranked[i].PositionChange = &change
		switch {
		case change > 0:
			ranked[i].Trend = TrendUp
		case change < 0:
			ranked[i].Trend = TrendDown
		default:
			ranked[i].Trend = TrendSame
		}
	}
	return ranked
}

// ComputeRankedStandingsWithTrend computes the player leaderboard for current and
// annotates it with movement against the leaderboard of previous. A nil previous
// means no earlier snapshot exists.
func ComputeRankedStandingsWithTrend(current, previous []padel.Match) []RankedPlayer {
	var previousStandings []PlayerStanding
	if previous != nil {
		previousStandings = ComputePlayerStandings(previous)
	}
	return DiffRankings(ComputePlayerStandings(current), previousStandings)
}

// Movement renders the position change as "+2" or "-1". It is empty for players who
// held their place or have no previous position.
func (p RankedPlayer) Movement() string {
	if p.PositionChange == nil || *p.PositionChange == 0 {
		return ""
	}
	return fmt.Sprintf("%+d", *p.PositionChange)
}
