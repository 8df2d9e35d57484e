package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncResolutions()
	IncResolvedByTier(tier string)
	IncAmbiguous()
	IncUnresolved()
	IncNormalizationFallbacks()
	ObserveResolutionDuration(seconds float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncPlayersImported(count int)
	SetStartupTime(seconds float64)
}

// MetricsStore persists lifetime counters in the database, surviving restarts
// and scrapes alike. It complements the Prometheus collectors.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
