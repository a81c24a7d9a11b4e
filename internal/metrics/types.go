package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	StandingsComputed  prometheus.Counter
	ComputeDuration    prometheus.Histogram
	SourceFailures     prometheus.Counter
	HistoryUnavailable prometheus.Counter
	MalformedRecords   prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	MatchesImported    prometheus.Counter
	SlackMessagesSent  prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
