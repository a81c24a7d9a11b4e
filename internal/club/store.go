package club

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
)

var (
	_ standings.MatchSource  = (*store)(nil)
	_ standings.SkipReporter = (*store)(nil)
)

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{
		db:  db,
		now: time.Now,
	}
}

// UpsertMatches inserts new matches and overwrites existing ones with the same ID in
// a single transaction. A stored match keeps its original position in the log.
func (s *store) UpsertMatches(ctx context.Context, matches []padel.Match) error {
	if len(matches) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO matches (id, played_on, side1_players, side2_players, side1_sets, side2_sets, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			played_on = excluded.played_on,
			side1_players = excluded.side1_players,
			side2_players = excluded.side2_players,
			side1_sets = excluded.side1_sets,
			side2_sets = excluded.side2_sets,
			imported_at = excluded.imported_at;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	importedAt := s.now().Unix()
	for _, m := range matches {
		row, err := toRow(m)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to encode match %s: %w", m.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, row.ID, row.PlayedOn, row.Side1Players, row.Side2Players, row.Side1Sets, row.Side2Sets, importedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug("Upserted matches", "count", len(matches))
	return nil
}

// LoadCurrentMatches returns the stored log ordered by date, then by insertion.
// Rows that no longer decode are skipped.
func (s *store) LoadCurrentMatches(ctx context.Context) ([]padel.Match, error) {
	matches, _, err := s.LoadCurrentMatchesWithSkips(ctx)
	return matches, err
}

// LoadCurrentMatchesWithSkips is LoadCurrentMatches that also returns why each
// skipped row could not be decoded.
func (s *store) LoadCurrentMatchesWithSkips(ctx context.Context) ([]padel.Match, []error, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, played_on, side1_players, side2_players, side1_sets, side2_sets
		FROM matches
		ORDER BY played_on, rowid
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]padel.Match, 0)
	var skipped []error
	for rows.Next() {
		var row matchRow
		if err := rows.Scan(&row.ID, &row.PlayedOn, &row.Side1Players, &row.Side2Players, &row.Side1Sets, &row.Side2Sets); err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		m, err := row.toMatch()
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%w: stored match %q: %v", padel.ErrMalformedRecord, row.ID, err))
			continue
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read matches: %w", err)
	}
	return matches, skipped, nil
}

// ClearMatch removes a single match.
func (s *store) ClearMatch(ctx context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM matches WHERE id = ?", matchID); err != nil {
		return fmt.Errorf("failed to delete match %s: %w", matchID, err)
	}
	return nil
}

// Clear removes every stored match.
func (s *store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM matches"); err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	log.Info("Cleared all matches")
	return nil
}

// CountMatches returns the number of stored matches.
func (s *store) CountMatches(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM matches").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func toRow(m padel.Match) (matchRow, error) {
	side1, err := json.Marshal(m.Players[0])
	if err != nil {
		return matchRow{}, err
	}
	side2, err := json.Marshal(m.Players[1])
	if err != nil {
		return matchRow{}, err
	}
	return matchRow{
		ID:           m.ID,
		PlayedOn:     m.Date.String(),
		Side1Players: string(side1),
		Side2Players: string(side2),
		Side1Sets:    m.Score[0],
		Side2Sets:    m.Score[1],
	}, nil
}

func (r matchRow) toMatch() (padel.Match, error) {
	var date padel.Date
	if r.PlayedOn != "" {
		d, err := padel.ParseDate(r.PlayedOn)
		if err != nil {
			return padel.Match{}, err
		}
		date = d
	}
	var side1, side2 []string
	if err := json.Unmarshal([]byte(r.Side1Players), &side1); err != nil {
		return padel.Match{}, fmt.Errorf("side 1 players: %w", err)
	}
	if err := json.Unmarshal([]byte(r.Side2Players), &side2); err != nil {
		return padel.Match{}, fmt.Errorf("side 2 players: %w", err)
	}
	return padel.Match{
		ID:      r.ID,
		Date:    date,
		Players: [2][]string{side1, side2},
		Score:   [2]int{r.Side1Sets, r.Side2Sets},
	}, nil
}
