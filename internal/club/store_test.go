package club_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mauv0809/padwell/internal/club"
	"github.com/mauv0809/padwell/internal/database"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.MatchStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return club.New(db), db, teardown
}

func match(id string, date padel.Date, side1, side2 []string, s1, s2 int) padel.Match {
	return padel.Match{ID: id, Date: date, Players: [2][]string{side1, side2}, Score: [2]int{s1, s2}}
}

func TestUpsertAndLoadMatches(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	d1 := padel.NewDate(2025, time.May, 12)
	d2 := padel.NewDate(2025, time.May, 19)
	in := []padel.Match{
		match("m2", d2, []string{"Ala", "Bob"}, []string{"Cid", "Dan"}, 2, 1),
		match("m1", d1, []string{"Ala"}, []string{"Bob"}, 2, 0),
		match("m3", d2, []string{"Eve"}, []string{"Fay"}, 0, 2),
	}
	require.NoError(t, store.UpsertMatches(ctx, in))

	got, err := store.LoadCurrentMatches(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, in[1], got[0], "older match first")
	assert.Equal(t, in[0], got[1])
	assert.Equal(t, in[2], got[2], "same day keeps insertion order")
}

func TestUpsertMatches_OverwritesExisting(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	d1 := padel.NewDate(2025, time.May, 12)

	require.NoError(t, store.UpsertMatches(ctx, []padel.Match{
		match("m1", d1, []string{"Ala"}, []string{"Bob"}, 2, 0),
		match("m2", d1, []string{"Cid"}, []string{"Dan"}, 2, 0),
	}))
	require.NoError(t, store.UpsertMatches(ctx, []padel.Match{
		match("m1", d1, []string{"Ala"}, []string{"Bob"}, 1, 2),
	}))

	got, err := store.LoadCurrentMatches(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, [2]int{1, 2}, got[0].Score)

	count, err := store.CountMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUpsertMatches_Empty(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	assert.NoError(t, store.UpsertMatches(context.Background(), nil))
}

func TestLoadCurrentMatches_SkipsUndecodableRows(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	_, err := db.Exec(`INSERT INTO matches (id, played_on, side1_players, side2_players, side1_sets, side2_sets, imported_at) VALUES
		('ok', '2025-05-12', '["Ala"]', '["Bob"]', 2, 0, 0),
		('bad-date', 'yesterday', '["Ala"]', '["Bob"]', 2, 0, 0),
		('bad-roster', '2025-05-12', 'Ala', '["Bob"]', 2, 0, 0)`)
	require.NoError(t, err)

	got, skipped, err := store.(standings.SkipReporter).LoadCurrentMatchesWithSkips(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
	require.Len(t, skipped, 2)
	for _, skipErr := range skipped {
		assert.ErrorIs(t, skipErr, padel.ErrMalformedRecord)
	}
}

func TestUpsertAndLoadMatches_WithoutDate(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	undated := match("m1", padel.Date{}, []string{"Ala"}, []string{"Bob"}, 2, 0)
	require.NoError(t, store.UpsertMatches(ctx, []padel.Match{undated}))

	got, err := store.LoadCurrentMatches(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, undated, got[0])
	assert.True(t, got[0].Date.IsZero())
}

func TestClearMatchAndClear(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()
	d1 := padel.NewDate(2025, time.May, 12)

	require.NoError(t, store.UpsertMatches(ctx, []padel.Match{
		match("m1", d1, []string{"Ala"}, []string{"Bob"}, 2, 0),
		match("m2", d1, []string{"Cid"}, []string{"Dan"}, 2, 0),
	}))

	require.NoError(t, store.ClearMatch(ctx, "m1"))
	count, err := store.CountMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, store.Clear(ctx))
	got, err := store.LoadCurrentMatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
