package source

import (
	"context"
	"sync"

	"github.com/mauv0809/padwell/internal/padel"
)

// Mock is a mock implementation of both standings.MatchSource and
// standings.HistorySource for testing. It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	LoadCurrentMatchesFunc  func(ctx context.Context) ([]padel.Match, error)
	LoadPreviousMatchesFunc func(ctx context.Context) ([]padel.Match, error)

	// Call records
	LoadCurrentMatchesCalls  int
	LoadPreviousMatchesCalls int
}

// NewMock creates a new mock instance returning current and previous.
func NewMock(current, previous []padel.Match) *Mock {
	return &Mock{
		LoadCurrentMatchesFunc: func(ctx context.Context) ([]padel.Match, error) {
			return current, nil
		},
		LoadPreviousMatchesFunc: func(ctx context.Context) ([]padel.Match, error) {
			return previous, nil
		},
	}
}

func (m *Mock) LoadCurrentMatches(ctx context.Context) ([]padel.Match, error) {
	m.mu.Lock()
	m.LoadCurrentMatchesCalls++
	fn := m.LoadCurrentMatchesFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return []padel.Match{}, nil
}

func (m *Mock) LoadPreviousMatches(ctx context.Context) ([]padel.Match, error) {
	m.mu.Lock()
	m.LoadPreviousMatchesCalls++
	fn := m.LoadPreviousMatchesFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil, nil
}
