package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/league"
	"github.com/mauv0809/rosterlink/internal/metrics"
	"github.com/mauv0809/rosterlink/internal/names"
)

// Resolver matches a user-supplied identity against the player directory by
// walking the tier table until a tier yields exactly one candidate. It holds
// no per-resolution state, so a single Resolver serves concurrent callers.
type Resolver struct {
	dir        directory.PlayerDirectory
	normalizer *league.Normalizer
	names      *names.Matcher
	metrics    metrics.Metrics
}

// New creates a new Resolver.
func New(dir directory.PlayerDirectory, normalizer *league.Normalizer, matcher *names.Matcher, metrics metrics.Metrics) *Resolver {
	return &Resolver{
		dir:        dir,
		normalizer: normalizer,
		names:      matcher,
		metrics:    metrics,
	}
}

// Resolve runs the tiers in order against the directory and finalizes the
// outcome. Directory errors abort the resolution and propagate unchanged;
// everything else (no match, many matches, a series string no rule
// recognizes) is an ordinary result, not an error.
func (r *Resolver) Resolve(ctx context.Context, q MatchQuery) (MatchResult, error) {
	start := time.Now()
	resolutionID := uuid.NewString()
	r.metrics.IncResolutions()

	club := league.CleanClub(q.Club)
	outcomes := make([]TierOutcome, 0, len(tierOrder))

	for _, spec := range tierOrder {
		dq := directory.Query{
			LastName: q.LastName,
			LeagueID: q.LeagueID,
		}
		if spec.useClub {
			dq.Club = club
		}

		// A series string no rule recognizes does not abort the tier: the
		// raw string is used as a best-effort constraint instead.
		seriesFallback := false
		if spec.useSeries {
			canonical, ok := r.normalizer.Normalize(q.SeriesRaw, club, league.Family(q.LeagueID))
			if ok {
				dq.Series = canonical
			} else {
				dq.Series = strings.TrimSpace(q.SeriesRaw)
				seriesFallback = true
				r.metrics.IncNormalizationFallbacks()
			}
		}

		records, err := r.dir.Search(ctx, dq)
		if err != nil {
			return MatchResult{}, fmt.Errorf("directory search at tier %s: %w", spec.tier, err)
		}

		candidates := r.filterByNames(records, q, spec)
		log.Info("Tier attempt",
			"resolution_id", resolutionID,
			"tier", spec.tier.String(),
			"constraints", strings.Join(spec.constraints(), ","),
			"candidate_count", len(candidates),
			"series_fallback", seriesFallback,
			"outcome", tierOutcomeLabel(len(candidates)),
		)

		outcomes = append(outcomes, TierOutcome{Tier: spec.tier, Candidates: candidates})
		if len(candidates) == 1 {
			// Unique match short-circuits; later tiers are never queried.
			break
		}
	}

	result := Finalize(outcomes)
	r.recordResult(result)
	r.metrics.ObserveResolutionDuration(time.Since(start).Seconds())

	log.Info("Resolution finished",
		"resolution_id", resolutionID,
		"status", result.Status,
		"tier", result.Tier.String(),
		"player_id", result.PlayerID,
		"candidate_count", len(result.Candidates),
	)
	return result, nil
}

// filterByNames applies the in-memory name-equivalence filters to the
// directory's coarse result set. Last name is always enforced; first name
// only on tiers that carry it.
func (r *Resolver) filterByNames(records []directory.PlayerRecord, q MatchQuery, spec tierSpec) []directory.PlayerRecord {
	var out []directory.PlayerRecord
	for _, rec := range records {
		if !r.names.LastNameMatches(rec.LastName, q.LastName) {
			continue
		}
		if spec.useFirst && !r.names.FirstNameMatches(rec.FirstName, q.FirstName) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (r *Resolver) recordResult(result MatchResult) {
	switch result.Status {
	case StatusResolved:
		r.metrics.IncResolvedByTier(result.Tier.String())
	case StatusAmbiguous:
		r.metrics.IncAmbiguous()
	case StatusUnresolved:
		r.metrics.IncUnresolved()
	}
}

func tierOutcomeLabel(candidateCount int) string {
	switch {
	case candidateCount == 0:
		return "advance"
	case candidateCount == 1:
		return "unique"
	default:
		return "ambiguous"
	}
}
