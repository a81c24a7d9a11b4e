package standings

import (
	"context"
	"errors"
	"time"

	"github.com/mauv0809/padwell/internal/padel"
)

var (
	// ErrSourceUnavailable means the current match log could not be read or parsed.
	// Standings cannot be computed without it.
	ErrSourceUnavailable = errors.New("match source unavailable")
	// ErrHistoryUnavailable means the previous snapshot could not be fetched. It is
	// never returned by Service; trends are simply left unknown.
	ErrHistoryUnavailable = errors.New("match history unavailable")
	// ErrPlayerNotFound is returned by PlayerProfile for a name with no matches.
	ErrPlayerNotFound = errors.New("player not found")
)

// MatchSource supplies the current match log.
type MatchSource interface {
	LoadCurrentMatches(ctx context.Context) ([]padel.Match, error)
}

// HistorySource supplies the match log as it was at the previous snapshot. A nil
// slice with a nil error means there is no earlier snapshot.
type HistorySource interface {
	LoadPreviousMatches(ctx context.Context) ([]padel.Match, error)
}

// LastModifier is implemented by collaborators that know when the match log last
// changed.
type LastModifier interface {
	LastModified(ctx context.Context) (time.Time, error)
}

// SkipReporter is implemented by sources that drop records they cannot decode. The
// service loads through it so those records are reported as skipped.
type SkipReporter interface {
	LoadCurrentMatchesWithSkips(ctx context.Context) ([]padel.Match, []error, error)
}

// Snapshot is the previous match log together with the time the current log last
// changed.
type Snapshot struct {
	Matches   []padel.Match
	UpdatedAt time.Time
}

// SnapshotSource is a HistorySource that finds the previous snapshot and the last
// modification time with a single lookup. The service prefers it over a separate
// LastModifier call.
type SnapshotSource interface {
	LoadPreviousSnapshot(ctx context.Context) (Snapshot, error)
}
