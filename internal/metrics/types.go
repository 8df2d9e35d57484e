package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed implementation of Metrics.
type Service struct {
	Resolutions            prometheus.Counter
	ResolvedByTier         *prometheus.CounterVec
	Ambiguous              prometheus.Counter
	Unresolved             prometheus.Counter
	NormalizationFallbacks prometheus.Counter
	ResolutionDuration     prometheus.Histogram
	SlackNotifSent         prometheus.Counter
	SlackNotifFailed       prometheus.Counter
	PlayersImported        prometheus.Counter
	StartupTimeSeconds     prometheus.Gauge
}
