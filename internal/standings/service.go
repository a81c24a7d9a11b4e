package standings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/mauv0809/padwell/internal/padel"
	"golang.org/x/sync/errgroup"
)

// Service computes a fresh standings report per request from its collaborators.
type Service struct {
	source  MatchSource
	history HistorySource
	metrics metrics.Metrics
	cache   *Cache
}

// Option configures a Service.
type Option func(*Service)

// WithHistory sets the collaborator supplying the previous snapshot. Without it every
// trend is unknown.
func WithHistory(history HistorySource) Option {
	return func(s *Service) {
		s.history = history
	}
}

// WithCache enables reuse of reports computed from identical inputs.
func WithCache(cache *Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// NewService creates a new Service.
func NewService(source MatchSource, metrics metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		source:  source,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Standings loads the current and previous match logs in parallel and computes the
// player and team leaderboards. It fails only when the current log is unavailable;
// a missing previous snapshot leaves every trend unknown. Records the source could
// not decode and matches that fail validation are both counted in Report.Skipped.
func (s *Service) Standings(ctx context.Context) (*Report, error) {
	startTime := time.Now()

	var (
		current, previous []padel.Match
		decodeSkipped     []error
		historyErr        error
		updatedAt         *time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, skipped, err := s.loadCurrent(gctx)
		if err != nil {
			if !errors.Is(err, ErrSourceUnavailable) {
				err = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
			}
			return err
		}
		current, decodeSkipped = matches, skipped
		return nil
	})
	snapshots, _ := s.history.(SnapshotSource)
	switch {
	case snapshots != nil:
		g.Go(func() error {
			snap, err := snapshots.LoadPreviousSnapshot(gctx)
			previous, historyErr = snap.Matches, err
			if !snap.UpdatedAt.IsZero() {
				updatedAt = &snap.UpdatedAt
			}
			return nil
		})
	case s.history != nil:
		g.Go(func() error {
			previous, historyErr = s.history.LoadPreviousMatches(gctx)
			return nil
		})
	}
	if lm := s.lastModifier(); lm != nil && snapshots == nil {
		g.Go(func() error {
			updatedAt = lastModified(gctx, lm)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.metrics.IncSourceFailures()
		log.Error("Failed to load current matches", "error", err)
		return nil, err
	}
	if historyErr != nil {
		s.historyUnavailable(historyErr)
		previous = nil
	} else if previous == nil && s.history != nil {
		log.Debug("No previous snapshot of the match log")
	}

	for _, skipErr := range decodeSkipped {
		log.Warn("Excluding undecodable match record from standings", "error", skipErr)
	}

	fingerprint, err := Fingerprint(current, previous)
	if err != nil {
		log.Warn("Failed to fingerprint matches, skipping cache", "error", err)
	}
	if fingerprint != "" {
		if cached, ok := s.cache.Get(fingerprint); ok {
			s.metrics.IncCacheHits()
			log.Debug("Serving standings from cache", "fingerprint", fingerprint)
			report := *cached
			report.Skipped = report.invalid + len(decodeSkipped)
			report.UpdatedAt = updatedAt
			s.countMalformed(report.Skipped)
			return &report, nil
		}
		if s.cache != nil {
			s.metrics.IncCacheMisses()
		}
	}

	valid, invalid := FilterValid(current)
	for _, skipErr := range invalid {
		log.Warn("Excluding malformed match from standings", "error", skipErr)
	}

	report := &Report{
		Players:          ComputeRankedStandingsWithTrend(valid, previous),
		Teams:            ComputeTeamStandings(valid),
		Matches:          current,
		HistoryAvailable: previous != nil,
		Fingerprint:      fingerprint,
		invalid:          len(invalid),
	}
	if fingerprint != "" {
		s.cache.Put(fingerprint, report)
	}

	out := *report
	out.Skipped = len(invalid) + len(decodeSkipped)
	out.UpdatedAt = updatedAt
	s.countMalformed(out.Skipped)

	duration := time.Since(startTime)
	s.metrics.IncStandingsComputed()
	s.metrics.ObserveComputeDuration(duration.Seconds())
	log.Info("Computed standings", "matches", len(valid), "skipped", out.Skipped, "players", len(out.Players), "teams", len(out.Teams), "history", out.HistoryAvailable, "duration_ms", duration.Milliseconds())
	return &out, nil
}

// Matches returns the current match log.
func (s *Service) Matches(ctx context.Context) ([]padel.Match, error) {
	matches, err := s.source.LoadCurrentMatches(ctx)
	if err != nil {
		s.metrics.IncSourceFailures()
		if !errors.Is(err, ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		return nil, err
	}
	return matches, nil
}

// loadCurrent reads the current log, collecting decode skips when the source
// reports them.
func (s *Service) loadCurrent(ctx context.Context) ([]padel.Match, []error, error) {
	if reporter, ok := s.source.(SkipReporter); ok {
		return reporter.LoadCurrentMatchesWithSkips(ctx)
	}
	matches, err := s.source.LoadCurrentMatches(ctx)
	return matches, nil, err
}

// historyUnavailable records a failed history load. It is only called once the
// current log loaded, so a shared failure is counted as a source failure alone.
func (s *Service) historyUnavailable(err error) {
	s.metrics.IncHistoryUnavailable()
	if !errors.Is(err, ErrHistoryUnavailable) {
		err = fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}
	log.Warn("Previous standings unavailable, trends will be omitted", "error", err)
}

func (s *Service) countMalformed(n int) {
	if n > 0 {
		s.metrics.AddMalformedRecords(n)
	}
}

// lastModifier prefers the history collaborator, which knows when the log was last
// published, over the current source.
func (s *Service) lastModifier() LastModifier {
	if lm, ok := s.history.(LastModifier); ok {
		return lm
	}
	if lm, ok := s.source.(LastModifier); ok {
		return lm
	}
	return nil
}

func lastModified(ctx context.Context, lm LastModifier) *time.Time {
	t, err := lm.LastModified(ctx)
	if err != nil {
		log.Debug("Could not determine when the match log was last modified", "error", err)
		return nil
	}
	if t.IsZero() {
		return nil
	}
	return &t
}
