package http

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/pubsub"
	"github.com/mauv0809/rosterlink/internal/resolver"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK!"))
	}
}

// ResolveHandler runs one identity resolution. The retry flag marks requests
// from the manual retry / settings-change flow; the resolution itself is
// identical, only bookkeeping differs.
func (s *Server) ResolveHandler(retry bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var query resolver.MatchQuery
		if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		result, err := s.Resolver.Resolve(r.Context(), query)
		if err != nil {
			// Directory failures are surfaced unchanged; transport-level
			// retry policy belongs to the caller.
			http.Error(w, "Failed to resolve player", http.StatusInternalServerError)
			log.Error("Resolution failed", "error", err)
			return
		}

		s.recordLifetimeCounters(result, retry)

		dryRun := isDryRunFromContext(r)
		s.publishAndNotify(query, result, retry, dryRun)

		w.Header().Set("Content-Type", "application/json")
		switch result.Status {
		case resolver.StatusAmbiguous:
			w.WriteHeader(http.StatusMultipleChoices)
		case resolver.StatusUnresolved:
			w.WriteHeader(http.StatusNotFound)
		}
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error("Failed to encode resolution result", "error", err)
		}
	}
}

func (s *Server) recordLifetimeCounters(result resolver.MatchResult, retry bool) {
	s.MetricsStore.Increment("resolutions")
	if retry {
		s.MetricsStore.Increment("retries")
	}
	switch result.Status {
	case resolver.StatusResolved:
		s.MetricsStore.Increment("resolved")
	case resolver.StatusAmbiguous:
		s.MetricsStore.Increment("ambiguous")
	case resolver.StatusUnresolved:
		s.MetricsStore.Increment("unresolved")
	}
}

// publishAndNotify fans the outcome out to pubsub and, for outcomes needing a
// human, the ops channel. Failures here are logged and swallowed: they must
// never change the caller's resolution result.
func (s *Server) publishAndNotify(query resolver.MatchQuery, result resolver.MatchResult, retry, dryRun bool) {
	event := linkEvent{Query: query, Result: result, Retry: retry}

	switch result.Status {
	case resolver.StatusResolved:
		if !dryRun {
			if err := s.pubsub.SendMessage(pubsub.EventPlayerLinked, event); err != nil {
				log.Error("Failed to publish player-linked event", "error", err)
			}
		}
	case resolver.StatusAmbiguous:
		if !dryRun {
			if err := s.pubsub.SendMessage(pubsub.EventLinkAmbiguous, event); err != nil {
				log.Error("Failed to publish link-ambiguous event", "error", err)
			}
		}
		if err := s.Notifier.SendAmbiguousAlert(query, result.Candidates, dryRun); err != nil {
			log.Error("Failed to send ambiguous alert", "error", err)
		}
	case resolver.StatusUnresolved:
		if !dryRun {
			if err := s.pubsub.SendMessage(pubsub.EventLinkUnresolved, event); err != nil {
				log.Error("Failed to publish link-unresolved event", "error", err)
			}
		}
		if err := s.Notifier.SendUnresolvedAlert(query, dryRun); err != nil {
			log.Error("Failed to send unresolved alert", "error", err)
		}
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Directory.GetAllPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from directory", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(players); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

// ImportHandler ingests a roster snapshot batch from the import pipeline.
func (s *Server) ImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var records []directory.PlayerRecord
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.Directory.UpsertPlayers(records); err != nil {
			http.Error(w, "Failed to import players", http.StatusInternalServerError)
			log.Error("Failed to import players", "error", err)
			return
		}

		s.Metrics.IncPlayersImported(len(records))
		log.Info("Imported roster snapshot", "count", len(records))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{"imported": len(records)})
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.MetricsStore.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get lifetime stats", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.Error("Failed to encode stats", "error", err)
		}
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.Directory.Clear()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Store cleared"))
	}
}
