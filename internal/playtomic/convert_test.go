package playtomic

import (
	"testing"
	"time"

	"github.com/mauv0809/padwell/internal/padel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playedMatch() PadelMatch {
	return PadelMatch{
		MatchID:       "match-abc",
		Start:         time.Date(2025, time.July, 9, 18, 0, 0, 0, time.UTC),
		GameStatus:    GameStatusPlayed,
		ResultsStatus: ResultsStatusConfirmed,
		Teams: []Team{
			{ID: "0", Players: []Player{{UserID: "u1", Name: "Ala"}, {UserID: "u2", Name: "Bob"}}},
			{ID: "1", Players: []Player{{UserID: "u3", Name: "Cid"}, {UserID: "u4", Name: "Dan"}}},
		},
		Results: []SetResult{
			{Name: "Set 1", Scores: map[string]int{"0": 6, "1": 4}},
			{Name: "Set 2", Scores: map[string]int{"0": 3, "1": 6}},
			{Name: "Set 3", Scores: map[string]int{"0": 7, "1": 5}},
		},
	}
}

func TestToMatch(t *testing.T) {
	got, ok := ToMatch(playedMatch())

	require.True(t, ok)
	assert.Equal(t, padel.Match{
		ID:      "match-abc",
		Date:    padel.NewDate(2025, time.July, 9),
		Players: [2][]string{{"Ala", "Bob"}, {"Cid", "Dan"}},
		Score:   [2]int{2, 1},
	}, got)
	assert.NoError(t, got.Validate())
}

func TestToMatch_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(m *PadelMatch)
	}{
		{"not played", func(m *PadelMatch) { m.GameStatus = GameStatusPending }},
		{"results unconfirmed", func(m *PadelMatch) { m.ResultsStatus = ResultsStatusValidating }},
		{"one team", func(m *PadelMatch) { m.Teams = m.Teams[:1] }},
		{"no results", func(m *PadelMatch) { m.Results = nil }},
		{"empty team", func(m *PadelMatch) { m.Teams[1].Players = nil }},
		{"unnamed player", func(m *PadelMatch) { m.Teams[0].Players[1].Name = " " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := playedMatch()
			tt.modify(&m)
			_, ok := ToMatch(m)
			assert.False(t, ok)
		})
	}
}
