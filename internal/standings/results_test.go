package standings_test

import (
	"testing"

	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDate(t *testing.T) {
	matches := []padel.Match{
		singles("m1", day1, "Ala", "Bob", 2, 0),
		singles("m2", day2, "Ala", "Cid", 2, 1),
		singles("m3", day1, "Bob", "Cid", 0, 2),
		singles("m4", day2, "Bob", "Ala", 1, 2),
	}

	days := standings.GroupByDate(matches)

	require.Len(t, days, 2)
	assert.Equal(t, day2, days[0].Date)
	assert.Equal(t, "m2", days[0].Matches[0].ID)
	assert.Equal(t, "m4", days[0].Matches[1].ID)
	assert.Equal(t, day1, days[1].Date)
	assert.Equal(t, "m1", days[1].Matches[0].ID)
	assert.Equal(t, "m3", days[1].Matches[1].ID)
}

func TestGroupByDate_Empty(t *testing.T) {
	assert.Empty(t, standings.GroupByDate(nil))
}

func TestPlayerProfile(t *testing.T) {
	matches := []padel.Match{
		singles("m1", day1, "Ala", "Bob", 2, 0),
		doubles("m2", day2, []string{"Cid", "Dan"}, []string{"Bob", "Ala"}, 2, 1),
		singles("m3", day3, "Cid", "Dan", 2, 0),
	}

	profile, err := standings.PlayerProfile(matches, "ala")

	require.NoError(t, err)
	assert.Equal(t, "Ala", profile.Name)
	require.NotNil(t, profile.Standing)
	assert.Equal(t, 35.0, profile.Standing.Points)
	assert.Equal(t, 2, profile.Rank)
	require.Len(t, profile.Matches, 2)
	assert.Equal(t, "m2", profile.Matches[0].Match.ID)
	assert.Equal(t, 1, profile.Matches[0].Side)
	assert.False(t, profile.Matches[0].Won)
	assert.Equal(t, "m1", profile.Matches[1].Match.ID)
	assert.True(t, profile.Matches[1].Won)
}

func TestPlayerProfile_NotFound(t *testing.T) {
	_, err := standings.PlayerProfile([]padel.Match{singles("m1", day1, "Ala", "Bob", 2, 0)}, "Zed")

	assert.ErrorIs(t, err, standings.ErrPlayerNotFound)
}
