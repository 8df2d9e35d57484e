package notifier

import (
	"sync"

	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/resolver"
)

// Mock is a mock implementation of Notifier for testing. It is safe for
// concurrent use.
type Mock struct {
	mu sync.Mutex

	AmbiguousAlertFunc  func(query resolver.MatchQuery, candidates []directory.PlayerRecord, dryRun bool) error
	UnresolvedAlertFunc func(query resolver.MatchQuery, dryRun bool) error

	AmbiguousAlerts  []AmbiguousAlertCall
	UnresolvedAlerts []UnresolvedAlertCall
}

// AmbiguousAlertCall holds the arguments for a call to SendAmbiguousAlert.
type AmbiguousAlertCall struct {
	Query      resolver.MatchQuery
	Candidates []directory.PlayerRecord
	DryRun     bool
}

// UnresolvedAlertCall holds the arguments for a call to SendUnresolvedAlert.
type UnresolvedAlertCall struct {
	Query  resolver.MatchQuery
	DryRun bool
}

// NewMock creates a new mock Notifier.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendAmbiguousAlert(query resolver.MatchQuery, candidates []directory.PlayerRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AmbiguousAlerts = append(m.AmbiguousAlerts, AmbiguousAlertCall{Query: query, Candidates: candidates, DryRun: dryRun})
	if m.AmbiguousAlertFunc != nil {
		return m.AmbiguousAlertFunc(query, candidates, dryRun)
	}
	return nil
}

func (m *Mock) SendUnresolvedAlert(query resolver.MatchQuery, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UnresolvedAlerts = append(m.UnresolvedAlerts, UnresolvedAlertCall{Query: query, DryRun: dryRun})
	if m.UnresolvedAlertFunc != nil {
		return m.UnresolvedAlertFunc(query, dryRun)
	}
	return nil
}
