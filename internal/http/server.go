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

func NewServer(dir directory.PlayerDirectory, res *resolver.Resolver, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Directory:      dir,
		Resolver:       res,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/resolve", Chain(s.ResolveHandler(false), paramsMiddleware))
	s.Router.Handle("/resolve/retry", Chain(s.ResolveHandler(true), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/import", Chain(s.ImportHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
