package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		StandingsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_standings_computed_total",
			Help: "The total number of standings reports computed from match data.",
		}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "padwell_standings_duration_seconds",
			Help:    "The duration of loading matches and computing a standings report.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SourceFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_source_failures_total",
			Help: "The total number of times the current match data could not be loaded.",
		}),
		HistoryUnavailable: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_history_unavailable_total",
			Help: "The total number of times the previous snapshot could not be loaded.",
		}),
		MalformedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_malformed_records_total",
			Help: "The total number of match records excluded from aggregation.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_standings_cache_hits_total",
			Help: "The total number of standings reports served from the fingerprint cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_standings_cache_misses_total",
			Help: "The total number of standings reports that had to be computed.",
		}),
		MatchesImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_matches_imported_total",
			Help: "The total number of matches imported from Playtomic.",
		}),
		SlackMessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padwell_slack_messages_sent_total",
			Help: "The total number of standings messages posted to Slack.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padwell_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.StandingsComputed,
		s.ComputeDuration,
		s.SourceFailures,
		s.HistoryUnavailable,
		s.MalformedRecords,
		s.CacheHits,
		s.CacheMisses,
		s.MatchesImported,
		s.SlackMessagesSent,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncStandingsComputed() {
	s.StandingsComputed.Inc()
}

func (s *Service) ObserveComputeDuration(duration float64) {
	s.ComputeDuration.Observe(duration)
}

func (s *Service) IncSourceFailures() {
	s.SourceFailures.Inc()
}

func (s *Service) IncHistoryUnavailable() {
	s.HistoryUnavailable.Inc()
}

func (s *Service) AddMalformedRecords(n int) {
	s.MalformedRecords.Add(float64(n))
}

func (s *Service) IncCacheHits() {
	s.CacheHits.Inc()
}

func (s *Service) IncCacheMisses() {
	s.CacheMisses.Inc()
}

func (s *Service) AddMatchesImported(n int) {
	s.MatchesImported.Add(float64(n))
}

func (s *Service) IncSlackMessagesSent() {
	s.SlackMessagesSent.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
