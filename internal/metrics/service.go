package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Resolutions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_resolutions_total",
			Help: "The total number of identity resolutions attempted.",
		}),
		ResolvedByTier: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_resolutions_resolved_total",
			Help: "The total number of unique resolutions, partitioned by the tier that produced them.",
		}, []string{"tier"}),
		Ambiguous: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_resolutions_ambiguous_total",
			Help: "The total number of resolutions that ended with multiple candidates.",
		}),
		Unresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_resolutions_unresolved_total",
			Help: "The total number of resolutions that found no candidate.",
		}),
		NormalizationFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_series_normalization_fallbacks_total",
			Help: "The total number of tier attempts that fell back to the raw series string.",
		}),
		ResolutionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_resolution_duration_seconds",
			Help:    "The duration of individual identity resolutions.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		PlayersImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_players_imported_total",
			Help: "The total number of directory records imported from snapshots.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Resolutions,
		s.ResolvedByTier,
		s.Ambiguous,
		s.Unresolved,
		s.NormalizationFallbacks,
		s.ResolutionDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.PlayersImported,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncResolutions() {
	s.Resolutions.Inc()
}

func (s *Service) IncResolvedByTier(tier string) {
	s.ResolvedByTier.WithLabelValues(tier).Inc()
}

func (s *Service) IncAmbiguous() {
	s.Ambiguous.Inc()
}

func (s *Service) IncUnresolved() {
	s.Unresolved.Inc()
}

func (s *Service) IncNormalizationFallbacks() {
	s.NormalizationFallbacks.Inc()
}

func (s *Service) ObserveResolutionDuration(seconds float64) {
	s.ResolutionDuration.Observe(seconds)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncPlayersImported(count int) {
	s.PlayersImported.Add(float64(count))
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
