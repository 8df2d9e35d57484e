package directory

import (
	"context"
	"strings"
	"sync"

	"github.com/mauv0809/rosterlink/internal/names"
)

// Mock is an in-memory implementation of PlayerDirectory for testing. It
// records every Search call so tests can assert how many lookups a resolution
// performed. It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	records []PlayerRecord

	// SearchFunc, when set, overrides the default in-memory filtering.
	SearchFunc func(q Query) ([]PlayerRecord, error)

	// SearchCalls holds the arguments of every Search call in order.
	SearchCalls []Query
}

// NewMock creates a mock directory pre-loaded with the given records.
func NewMock(records ...PlayerRecord) *Mock {
	return &Mock{records: records}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchCalls = nil
}

// Search records the call and filters the in-memory records with the same
// constraint semantics as the SQLite store.
func (m *Mock) Search(_ context.Context, q Query) ([]PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchCalls = append(m.SearchCalls, q)

	if m.SearchFunc != nil {
		return m.SearchFunc(q)
	}

	lastKey := names.NormalizeKey(q.LastName)
	var out []PlayerRecord
	for _, r := range m.records {
		if r.LeagueID != q.LeagueID {
			continue
		}
		if names.NormalizeKey(r.LastName) != lastKey {
			continue
		}
		if q.Club != "" && !strings.EqualFold(r.Club, q.Club) {
			continue
		}
		if q.Series != "" && !strings.EqualFold(r.SeriesCanonical, q.Series) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *Mock) UpsertPlayers(records []PlayerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		replaced := false
		for i := range m.records {
			if m.records[i].ID == r.ID {
				m.records[i] = r
				replaced = true
				break
			}
		}
		if !replaced {
			m.records = append(m.records, r)
		}
	}
	return nil
}

func (m *Mock) GetAllPlayers() ([]PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PlayerRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Mock) GetPlayer(playerID string) (*PlayerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == playerID {
			record := r
			return &record, nil
		}
	}
	return nil, nil
}

func (m *Mock) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
}
