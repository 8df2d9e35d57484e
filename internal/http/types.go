package http

import (
	"net/http"

	"github.com/mauv0809/rosterlink/internal/config"
	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/metrics"
	"github.com/mauv0809/rosterlink/internal/notifier"
	"github.com/mauv0809/rosterlink/internal/pubsub"
	"github.com/mauv0809/rosterlink/internal/resolver"
)

type Server struct {
	Directory      directory.PlayerDirectory
	Resolver       *resolver.Resolver
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

// linkEvent is the payload published after a resolution attempt.
type linkEvent struct {
	Query  resolver.MatchQuery  `json:"query" msgpack:"query"`
	Result resolver.MatchResult `json:"result" msgpack:"result"`
	Retry  bool                 `json:"retry" msgpack:"retry"`
}
