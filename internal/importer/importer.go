package importer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padwell/internal/club"
	"github.com/mauv0809/padwell/internal/metrics"
	"github.com/mauv0809/padwell/internal/padel"
	"github.com/mauv0809/padwell/internal/playtomic"
	"golang.org/x/sync/errgroup"
)

const detailWorkers = 4

// Result summarises one import run.
type Result struct {
	Found    int `json:"found"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Importer copies finished Playtomic matches of one club into the match store.
type Importer struct {
	client   playtomic.PlaytomicClient
	store    club.MatchStore
	metrics  metrics.Metrics
	tenantID string
}

// New creates a new Importer.
func New(client playtomic.PlaytomicClient, store club.MatchStore, metrics metrics.Metrics, tenantID string) *Importer {
	return &Importer{
		client:   client,
		store:    store,
		metrics:  metrics,
		tenantID: tenantID,
	}
}

// Run imports every played match with confirmed results that started after since.
// A match whose details cannot be fetched is logged and counted as failed; the rest
// are still imported.
func (i *Importer) Run(ctx context.Context, since time.Time) (Result, error) {
	params := &playtomic.SearchMatchesParams{
		SportID:       "PADEL",
		HasPlayers:    true,
		Sort:          "start_date,ASC",
		TenantIDs:     []string{i.tenantID},
		FromStartDate: since.Format("2006-01-02") + "T00:00:00",
	}
	summaries, err := i.client.GetMatches(ctx, params)
	if err != nil {
		return Result{}, fmt.Errorf("failed to search playtomic matches: %w", err)
	}

	var (
		mu      sync.Mutex
		matches = make([]padel.Match, 0, len(summaries))
		result  = Result{Found: len(summaries)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailWorkers)
	for _, summary := range summaries {
		g.Go(func() error {
			details, err := i.client.GetSpecificMatch(gctx, summary.MatchID)
			if err != nil {
				log.Warn("Failed to fetch match details", "matchID", summary.MatchID, "error", err)
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return nil
			}
			m, ok := playtomic.ToMatch(details)

			mu.Lock()
			defer mu.Unlock()
			if !ok {
				log.Debug("Skipping match without a final result", "matchID", summary.MatchID, "gameStatus", details.GameStatus, "resultsStatus", details.ResultsStatus)
				result.Skipped++
				return nil
			}
			matches = append(matches, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := i.store.UpsertMatches(ctx, matches); err != nil {
		return result, fmt.Errorf("failed to store imported matches: %w", err)
	}
	result.Imported = len(matches)
	i.metrics.AddMatchesImported(result.Imported)
	log.Info("Imported matches from Playtomic", "found", result.Found, "imported", result.Imported, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}
