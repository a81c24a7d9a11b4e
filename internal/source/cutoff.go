package source

import (
	"context"

	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/standings"
)

var _ standings.HistorySource = (*DateCutoff)(nil)

// DateCutoff derives the previous snapshot from the current log: every match played
// before the most recent match day. It needs no history store, so trends show how the
// last match day moved the table.
type DateCutoff struct {
	source standings.MatchSource
}

// NewDateCutoff wraps source.
func NewDateCutoff(source standings.MatchSource) *DateCutoff {
	return &DateCutoff{source: source}
}

// LoadPreviousMatches returns the matches dated before the latest date, or nil when
// all matches share one date.
func (d *DateCutoff) LoadPreviousMatches(ctx context.Context) ([]padel.Match, error) {
	matches, err := d.source.LoadCurrentMatches(ctx)
	if err != nil {
		return nil, err
	}
	return BeforeLatestDate(matches), nil
}

// BeforeLatestDate returns the matches strictly older than the newest match date, in
// input order. It returns nil when there are none.
func BeforeLatestDate(matches []padel.Match) []padel.Match {
	var latest padel.Date
	for _, m := range matches {
		if m.Date.After(latest) {
			latest = m.Date
		}
	}

	var previous []padel.Match
	for _, m := range matches {
		if m.Date.Before(latest) {
			previous = append(previous, m)
		}
	}
	return previous
}
