package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	standingsComputed  int
	computeDurations   []float64
	sourceFailures     int
	historyUnavailable int
	malformedRecords   int
	cacheHits          int
	cacheMisses        int
	matchesImported    int
	slackMessagesSent  int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		computeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncStandingsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standingsComputed++
}

func (m *Mock) ObserveComputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.computeDurations = append(m.computeDurations, duration)
}

func (m *Mock) IncSourceFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceFailures++
}

func (m *Mock) IncHistoryUnavailable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyUnavailable++
}

func (m *Mock) AddMalformedRecords(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.malformedRecords += n
}

func (m *Mock) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

func (m *Mock) AddMatchesImported(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesImported += n
}

func (m *Mock) IncSlackMessagesSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackMessagesSent++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// StandingsComputed returns the number of times IncStandingsComputed was called.
func (m *Mock) StandingsComputed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.standingsComputed
}

// SourceFailures returns the number of times IncSourceFailures was called.
func (m *Mock) SourceFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sourceFailures
}

// HistoryUnavailable returns the number of times IncHistoryUnavailable was called.
func (m *Mock) HistoryUnavailable() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.historyUnavailable
}

// MalformedRecords returns the sum of all AddMalformedRecords calls.
func (m *Mock) MalformedRecords() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.malformedRecords
}

// CacheHits returns the number of times IncCacheHits was called.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// CacheMisses returns the number of times IncCacheMisses was called.
func (m *Mock) CacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses
}

// MatchesImported returns the sum of all AddMatchesImported calls.
func (m *Mock) MatchesImported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesImported
}

// SlackMessagesSent returns the number of times IncSlackMessagesSent was called.
func (m *Mock) SlackMessagesSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackMessagesSent
}
