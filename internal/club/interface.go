package club

import (
	"context"

	"github.com/mauv0809/padwell/internal/padel"
)

// MatchStore persists the club's match log.
type MatchStore interface {
	UpsertMatches(ctx context.Context, matches []padel.Match) error
	LoadCurrentMatches(ctx context.Context) ([]padel.Match, error)
	ClearMatch(ctx context.Context, matchID string) error
	Clear(ctx context.Context) error
	CountMatches(ctx context.Context) (int, error)
}
