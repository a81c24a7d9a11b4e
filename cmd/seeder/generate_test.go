package main

import (
	"testing"
	"time"

	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Matches(t *testing.T) {
	g := newGenerator(42)
	names := g.players(10)
	require.Len(t, names, 10)
	assert.Len(t, padel.PlayerNames([]padel.Match{{Players: [2][]string{names, nil}}}), 10, "names are distinct")

	start := time.Date(2025, time.May, 12, 19, 0, 0, 0, time.UTC)
	matches := g.matches(names, start, 3, 5)

	require.Len(t, matches, 15)
	valid, skipped := standings.FilterValid(matches)
	assert.Empty(t, skipped)
	assert.Len(t, valid, 15)

	ids := make(map[string]struct{})
	for i, m := range matches {
		ids[m.ID] = struct{}{}
		assert.Equal(t, padel.NewDate(2025, time.May, 12+7*(i/5)), m.Date)
		assert.Equal(t, len(m.Players[0]), len(m.Players[1]))
		assert.Equal(t, 30.0, standings.PointsFor(m.Score[0], m.Score[1])+standings.PointsFor(m.Score[1], m.Score[0]))
		for _, p := range m.Players[0] {
			_, ok := m.SideOf(p)
			assert.True(t, ok)
			assert.NotContains(t, m.Players[1], p)
		}
	}
	assert.Len(t, ids, 15)
}

func TestGenerator_SameSeedSameNames(t *testing.T) {
	assert.Equal(t, newGenerator(7).players(5), newGenerator(7).players(5))
}
