package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                     sync.Mutex
	resolutions            int
	resolvedByTier         map[string]int
	ambiguous              int
	unresolved             int
	normalizationFallbacks int
	resolutionDurations    []float64
	slackNotifSent         int
	slackNotifFailed       int
	playersImported        int
	startupTime            float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		resolvedByTier:      make(map[string]int),
		resolutionDurations: make([]float64, 0),
	}
}

func (m *Mock) IncResolutions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolutions++
}

func (m *Mock) IncResolvedByTier(tier string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolvedByTier[tier]++
}

func (m *Mock) IncAmbiguous() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ambiguous++
}

func (m *Mock) IncUnresolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unresolved++
}

func (m *Mock) IncNormalizationFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.normalizationFallbacks++
}

func (m *Mock) ObserveResolutionDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolutionDurations = append(m.resolutionDurations, seconds)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncPlayersImported(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersImported += count
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// Resolutions returns the number of times IncResolutions was called.
func (m *Mock) Resolutions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolutions
}

// ResolvedByTier returns the count recorded for a tier label.
func (m *Mock) ResolvedByTier(tier string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolvedByTier[tier]
}

// Ambiguous returns the number of times IncAmbiguous was called.
func (m *Mock) Ambiguous() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ambiguous
}

// Unresolved returns the number of times IncUnresolved was called.
func (m *Mock) Unresolved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unresolved
}

// NormalizationFallbacks returns the number of raw-series fallbacks recorded.
func (m *Mock) NormalizationFallbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.normalizationFallbacks
}

// SlackNotifSent returns the number of notifications recorded as sent.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of notifications recorded as failed.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// PlayersImported returns the total import count recorded.
func (m *Mock) PlayersImported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersImported
}
