package standings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mauv0809/padwell/internal/padel"
)

// GroupByDate groups matches by date, most recent day first. Matches within a day
// keep their input order.
func GroupByDate(matches []padel.Match) []MatchDay {
	index := make(map[padel.Date]int)
	days := make([]MatchDay, 0)
	for _, m := range matches {
		i, ok := index[m.Date]
		if !ok {
			i = len(days)
			index[m.Date] = i
			days = append(days, MatchDay{Date: m.Date})
		}
		days[i].Matches = append(days[i].Matches, m)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days
}

// PlayerProfile returns the named player's rank, totals and matches, newest first.
// The name is matched case-insensitively.
func PlayerProfile(matches []padel.Match, name string) (*Profile, error) {
	players := ComputePlayerStandings(matches)

	profile := &Profile{Name: name, Matches: []PlayerMatch{}}
	for i := range players {
		if strings.EqualFold(players[i].Name, name) {
			profile.Name = players[i].Name
			profile.Rank = i + 1
			profile.Standing = &players[i]
			break
		}
	}
	if profile.Standing == nil {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
	}

	valid, _ := FilterValid(matches)
	for _, m := range valid {
		side, ok := m.SideOf(profile.Name)
		if !ok {
			continue
		}
		profile.Matches = append(profile.Matches, PlayerMatch{
			Match: m,
			Side:  side,
			Won:   m.Score[side] > m.Score[padel.Opponent(side)],
		})
	}

	sort.SliceStable(profile.Matches, func(i, j int) bool {
		return profile.Matches[i].Match.Date.After(profile.Matches[j].Match.Date)
	})
	return profile, nil
}
