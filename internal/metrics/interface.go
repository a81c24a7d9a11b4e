package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncStandingsComputed()
	ObserveComputeDuration(duration float64)
	IncSourceFailures()
	IncHistoryUnavailable()
	AddMalformedRecords(n int)
	IncCacheHits()
	IncCacheMisses()
	AddMatchesImported(n int)
	IncSlackMessagesSent()
	SetStartupTime(duration float64)
}
