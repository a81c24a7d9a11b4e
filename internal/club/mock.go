package club

import (
	"context"
	"sync"

	"github.com/mauv0809/padwell/internal/padel"
)

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertMatchesFunc      func(ctx context.Context, matches []padel.Match) error
	LoadCurrentMatchesFunc func(ctx context.Context) ([]padel.Match, error)
	ClearMatchFunc         func(ctx context.Context, matchID string) error
	ClearFunc              func(ctx context.Context) error
	CountMatchesFunc       func(ctx context.Context) (int, error)

	// Call records
	UpsertMatchesCalls      [][]padel.Match
	LoadCurrentMatchesCalls int
	ClearMatchCalls         []string
	ClearCalls              int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMatchesCalls = nil
	m.LoadCurrentMatchesCalls = 0
	m.ClearMatchCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) UpsertMatches(ctx context.Context, matches []padel.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMatchesCalls = append(m.UpsertMatchesCalls, matches)
	if m.UpsertMatchesFunc != nil {
		return m.UpsertMatchesFunc(ctx, matches)
	}
	return nil
}

func (m *MockStore) LoadCurrentMatches(ctx context.Context) ([]padel.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCurrentMatchesCalls++
	if m.LoadCurrentMatchesFunc != nil {
		return m.LoadCurrentMatchesFunc(ctx)
	}
	return []padel.Match{}, nil
}

func (m *MockStore) ClearMatch(ctx context.Context, matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearMatchCalls = append(m.ClearMatchCalls, matchID)
	if m.ClearMatchFunc != nil {
		return m.ClearMatchFunc(ctx, matchID)
	}
	return nil
}

func (m *MockStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}

func (m *MockStore) CountMatches(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountMatchesFunc != nil {
		return m.CountMatchesFunc(ctx)
	}
	return 0, nil
}
