package standings

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/mauv0809/padwell/internal/padel"
)

// TeamSeparator joins member names into a team identity.
const TeamSeparator = " & "

// TeamKey returns the canonical identity of a roster: names sorted and joined, so the
// same pairing maps to one key regardless of side or listing order.
func TeamKey(players []string) string {
	return strings.Join(sortedCopy(players), TeamSeparator)
}

func sortedCopy(players []string) []string {
	sorted := slices.Clone(players)
	slices.Sort(sorted)
	return sorted
}

// ComputeTeamStandings folds matches into per-roster totals, sorted by win rate and
// then by matches played, both descending. Wins and losses come from the raw set
// score; a drawn match counts as played but neither won nor lost. Malformed records
// are skipped.
func ComputeTeamStandings(matches []padel.Match) []TeamStanding {
	valid, _ := FilterValid(matches)

	index := make(map[string]int)
	teams := make([]TeamStanding, 0)

	for _, m := range valid {
		for side := range 2 {
			members := sortedCopy(m.Players[side])
			key := strings.Join(members, TeamSeparator)

			i, ok := index[key]
			if !ok {
				i = len(teams)
				index[key] = i
				teams = append(teams, TeamStanding{Team: key, Players: members})
			}

			own, opp := m.Score[side], m.Score[padel.Opponent(side)]
			t := &teams[i]
			t.MatchesPlayed++
			t.SetsWon += own
			t.SetsLost += opp
			switch {
			case own > opp:
				t.Wins++
			case own < opp:
				t.Losses++
			}
		}
	}

	for i := range teams {
		teams[i].WinRatePercent = winRate(teams[i].Wins, teams[i].MatchesPlayed)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].WinRatePercent != teams[j].WinRatePercent {
			return teams[i].WinRatePercent > teams[j].WinRatePercent
		}
		return teams[i].MatchesPlayed > teams[j].MatchesPlayed
	})
	return teams
}

func winRate(wins, played int) int {
	if played == 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(played) * 100))
}
