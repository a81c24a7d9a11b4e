package playtomic

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/padel"
)

// toPadelMatch maps the REST response onto PadelMatch. Unrecognised game statuses
// become GameStatusUnknown so they are never imported.
func (r matchResponse) toPadelMatch(matchID string) (PadelMatch, error) {
	start, err := time.Parse(startDateLayout, r.StartDate)
	if err != nil {
		return PadelMatch{}, fmt.Errorf("match %s: failed to parse start time: %w", matchID, err)
	}

	status := GameStatus(r.GameStatus)
	if !knownGameStatuses[status] {
		log.Warn("Unknown game status received from Playtomic API", "status", r.GameStatus, "matchID", matchID)
		status = GameStatusUnknown
	}

	m := PadelMatch{
		MatchID:       matchID,
		Start:         start,
		GameStatus:    status,
		ResultsStatus: ResultsStatus(r.ResultsStatus),
		ResourceName:  r.ResourceName,
		Tenant:        Tenant{ID: r.Tenant.ID, Name: r.Tenant.Name},
		Teams:         make([]Team, 0, len(r.Teams)),
		Results:       make([]SetResult, 0, len(r.Results)),
	}
	for _, tr := range r.Teams {
		team := Team{ID: tr.TeamID}
		for _, p := range tr.Players {
			team.Players = append(team.Players, Player{UserID: p.UserID, Name: p.Name})
		}
		m.Teams = append(m.Teams, team)
	}
	for _, sr := range r.Results {
		set := SetResult{Name: sr.Name, Scores: make(map[string]int, len(sr.Scores))}
		for _, score := range sr.Scores {
			set.Scores[score.TeamID] = score.Score
		}
		m.Results = append(m.Results, set)
	}
	return m, nil
}

// ToMatch converts a finished Playtomic match into a match log record. It reports
// false for matches that are not played, have unconfirmed results, or do not have
// exactly two teams with named players.
func ToMatch(m PadelMatch) (padel.Match, bool) {
	if m.GameStatus != GameStatusPlayed || m.ResultsStatus != ResultsStatusConfirmed {
		return padel.Match{}, false
	}
	if len(m.Teams) != 2 || len(m.Results) == 0 {
		return padel.Match{}, false
	}

	out := padel.Match{
		ID:   m.MatchID,
		Date: padel.DateOf(m.Start),
	}
	for side, team := range m.Teams {
		for _, p := range team.Players {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				return padel.Match{}, false
			}
			out.Players[side] = append(out.Players[side], name)
		}
		if len(out.Players[side]) == 0 {
			return padel.Match{}, false
		}
	}

	// Each side's score is the number of sets it won.
	first, second := m.Teams[0].ID, m.Teams[1].ID
	for _, set := range m.Results {
		a, b := set.Scores[first], set.Scores[second]
		switch {
		case a > b:
			out.Score[0]++
		case b > a:
			out.Score[1]++
		}
	}
	return out, true
}
