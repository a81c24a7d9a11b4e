package standings

import (
	"sort"

	"github.com/mauv0809/padwell/internal/padel"
)

// ComputePlayerStandings folds matches into per-player totals, sorted by points
// descending. Players tied on points keep the order in which they first appeared.
// Malformed records are skipped.
func ComputePlayerStandings(matches []padel.Match) []PlayerStanding {
	valid, _ := FilterValid(matches)

	index := make(map[string]int)
	stats := make([]PlayerStanding, 0)

	for _, m := range valid {
		for side := range 2 {
			own, opp := m.Score[side], m.Score[padel.Opponent(side)]
			points := PointsFor(own, opp)

			for _, name := range m.Players[side] {
				i, ok := index[name]
				if !ok {
					i = len(stats)
					index[name] = i
					stats = append(stats, PlayerStanding{Name: name})
				}

				s := &stats[i]
				s.MatchesPlayed++
				s.Points += points
				s.SetsWon += own
				s.SetsLost += opp
				if points > WinThreshold {
					s.Wins++
				} else {
					s.Losses++
				}
			}
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Points > stats[j].Points
	})
	return stats
}
