package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/league"
	"github.com/mauv0809/rosterlink/internal/metrics"
	"github.com/mauv0809/rosterlink/internal/names"
	"github.com/mauv0809/rosterlink/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(dir directory.PlayerDirectory, m *metrics.Mock) *resolver.Resolver {
	return resolver.New(dir, league.NewNormalizer(), names.NewMatcher(), m)
}

func TestResolvePrimaryTierShortCircuits(t *testing.T) {
	dir := directory.NewMock(directory.PlayerRecord{
		ID: "p1", FirstName: "Robert", LastName: "Smith",
		Club: "Tennaqua", SeriesCanonical: "Tennaqua - 19", LeagueID: "APTA_CHICAGO",
	})
	m := metrics.NewMock()
	r := newResolver(dir, m)

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "Chicago 19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)

	assert.Equal(t, resolver.StatusResolved, result.Status)
	assert.Equal(t, "p1", result.PlayerID)
	assert.Equal(t, resolver.TierPrimary, result.Tier)

	// A unique PRIMARY match must never touch the fallback tiers.
	require.Len(t, dir.SearchCalls, 1)
	assert.Equal(t, "Tennaqua - 19", dir.SearchCalls[0].Series)
	assert.Equal(t, "Tennaqua", dir.SearchCalls[0].Club)

	assert.Equal(t, 1, m.Resolutions())
	assert.Equal(t, 1, m.ResolvedByTier("PRIMARY"))
	assert.Equal(t, 0, m.NormalizationFallbacks())
}

func TestResolveTierConstraintProgression(t *testing.T) {
	dir := directory.NewMock() // empty directory, all tiers run
	r := newResolver(dir, metrics.NewMock())

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "Series 19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)
	assert.Equal(t, resolver.StatusUnresolved, result.Status)

	require.Len(t, dir.SearchCalls, 4)

	// PRIMARY: everything on.
	assert.Equal(t, "Tennaqua", dir.SearchCalls[0].Club)
	assert.Equal(t, "Tennaqua - 19", dir.SearchCalls[0].Series)

	// FALLBACK1 drops club but keeps series.
	assert.Empty(t, dir.SearchCalls[1].Club)
	assert.Equal(t, "Tennaqua - 19", dir.SearchCalls[1].Series)

	// FALLBACK2 restores club, still carries series.
	assert.Equal(t, "Tennaqua", dir.SearchCalls[2].Club)
	assert.Equal(t, "Tennaqua - 19", dir.SearchCalls[2].Series)

	// FALLBACK3 drops series, keeps club.
	assert.Equal(t, "Tennaqua", dir.SearchCalls[3].Club)
	assert.Empty(t, dir.SearchCalls[3].Series)

	// Last name and league are constraints at every tier.
	for _, call := range dir.SearchCalls {
		assert.Equal(t, "Smith", call.LastName)
		assert.Equal(t, "APTA_CHICAGO", call.LeagueID)
	}
}

func TestResolveLaterUniqueOverridesEarlierAmbiguity(t *testing.T) {
	two := []directory.PlayerRecord{
		{ID: "p1", FirstName: "Robert", LastName: "Smith", LeagueID: "APTA_CHICAGO"},
		{ID: "p2", FirstName: "Bobby", LastName: "Smith", LeagueID: "APTA_CHICAGO"},
	}
	one := []directory.PlayerRecord{
		{ID: "p3", FirstName: "Roberta", LastName: "Smith", LeagueID: "APTA_CHICAGO"},
	}

	dir := directory.NewMock()
	dir.SearchFunc = func(q directory.Query) ([]directory.PlayerRecord, error) {
		if q.Club != "" {
			return two, nil // PRIMARY carries the club constraint
		}
		return one, nil // FALLBACK1 drops it
	}
	m := metrics.NewMock()
	r := newResolver(dir, m)

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)

	assert.Equal(t, resolver.StatusResolved, result.Status)
	assert.Equal(t, "p3", result.PlayerID)
	assert.Equal(t, resolver.TierFallback1, result.Tier)
	require.Len(t, dir.SearchCalls, 2)
	assert.Equal(t, 1, m.ResolvedByTier("FALLBACK1"))
}

func TestResolveAmbiguityReportsEarliestTierSet(t *testing.T) {
	two := []directory.PlayerRecord{
		{ID: "p1", FirstName: "Robert", LastName: "Smith", LeagueID: "APTA_CHICAGO"},
		{ID: "p2", FirstName: "Bobby", LastName: "Smith", LeagueID: "APTA_CHICAGO"},
	}
	three := append([]directory.PlayerRecord{}, two...)
	three = append(three, directory.PlayerRecord{ID: "p3", FirstName: "Rob", LastName: "Smith", LeagueID: "APTA_CHICAGO"})

	dir := directory.NewMock()
	dir.SearchFunc = func(q directory.Query) ([]directory.PlayerRecord, error) {
		if q.Club != "" && q.Series != "" {
			return two, nil // PRIMARY and FALLBACK2
		}
		return three, nil // looser tiers widen the set
	}
	m := metrics.NewMock()
	r := newResolver(dir, m)

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)

	// All four tiers ran, but the reported ambiguity is PRIMARY's two
	// candidates, not a later tier's superset.
	require.Len(t, dir.SearchCalls, 4)
	assert.Equal(t, resolver.StatusAmbiguous, result.Status)
	assert.Equal(t, resolver.TierPrimary, result.Tier)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "p1", result.Candidates[0].ID)
	assert.Equal(t, "p2", result.Candidates[1].ID)
	assert.Equal(t, 1, m.Ambiguous())
}

func TestResolveSeriesNormalizationFallsBackToRaw(t *testing.T) {
	dir := directory.NewMock(directory.PlayerRecord{
		ID: "p1", FirstName: "Robert", LastName: "Smith",
		Club: "Tennaqua", SeriesCanonical: "Tennaqua - 19", LeagueID: "APTA_CHICAGO",
	})
	m := metrics.NewMock()
	r := newResolver(dir, m)

	// "Playoffs" matches no series rule, so the tiers that carry the series
	// constraint query with the raw string and find nothing. FALLBACK3 drops
	// the series and resolves.
	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "Playoffs",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)

	assert.Equal(t, resolver.StatusResolved, result.Status)
	assert.Equal(t, "p1", result.PlayerID)
	assert.Equal(t, resolver.TierFallback3, result.Tier)

	require.Len(t, dir.SearchCalls, 4)
	assert.Equal(t, "Playoffs", dir.SearchCalls[0].Series)
	assert.Equal(t, 3, m.NormalizationFallbacks()) // three tiers carry series
}

func TestResolveUnresolvedWhenNoTierMatches(t *testing.T) {
	dir := directory.NewMock(directory.PlayerRecord{
		ID: "p1", FirstName: "Robert", LastName: "Jones",
		Club: "Tennaqua", SeriesCanonical: "Tennaqua - 19", LeagueID: "APTA_CHICAGO",
	})
	m := metrics.NewMock()
	r := newResolver(dir, m)

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "Chicago 19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)

	assert.Equal(t, resolver.StatusUnresolved, result.Status)
	require.Len(t, dir.SearchCalls, 4)
	assert.Equal(t, 1, m.Unresolved())
}

func TestResolveEmptyLastNameYieldsUnresolved(t *testing.T) {
	dir := directory.NewMock(directory.PlayerRecord{
		ID: "p1", FirstName: "Robert", LastName: "Smith",
		Club: "Tennaqua", SeriesCanonical: "Tennaqua - 19", LeagueID: "APTA_CHICAGO",
	})
	r := newResolver(dir, metrics.NewMock())

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "",
		Club:      "Tennaqua",
		SeriesRaw: "Chicago 19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)
	assert.Equal(t, resolver.StatusUnresolved, result.Status)
}

func TestResolveDirectoryErrorPropagates(t *testing.T) {
	dirErr := errors.New("directory unavailable")
	dir := directory.NewMock()
	dir.SearchFunc = func(q directory.Query) ([]directory.PlayerRecord, error) {
		return nil, dirErr
	}
	r := newResolver(dir, metrics.NewMock())

	_, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dirErr)
	assert.Len(t, dir.SearchCalls, 1) // no retries across tiers
}

func TestResolveFirstNameRelaxedOnFallbackTiers(t *testing.T) {
	// Directory record whose first name is nothing like the query's. PRIMARY
	// rejects it; FALLBACK1 drops the first-name constraint and resolves.
	dir := directory.NewMock(directory.PlayerRecord{
		ID: "p1", FirstName: "Gertrude", LastName: "Smith",
		Club: "Winnetka", SeriesCanonical: "Winnetka - 19", LeagueID: "APTA_CHICAGO",
	})
	r := newResolver(dir, metrics.NewMock())

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Winnetka",
		SeriesRaw: "Series 19",
		LeagueID:  "APTA_CHICAGO",
	})
	require.NoError(t, err)

	assert.Equal(t, resolver.StatusResolved, result.Status)
	assert.Equal(t, "p1", result.PlayerID)
	assert.Equal(t, resolver.TierFallback1, result.Tier)
}

func TestResolveNSTFEndToEnd(t *testing.T) {
	dir := directory.NewMock(directory.PlayerRecord{
		ID: "n1", FirstName: "Carol", LastName: "Jones",
		Club: "Tennaqua", SeriesCanonical: "Tennaqua S2B", LeagueID: "NSTF",
	})
	r := newResolver(dir, metrics.NewMock())

	result, err := r.Resolve(context.Background(), resolver.MatchQuery{
		FirstName: "Carol",
		LastName:  "Jones",
		Club:      "Tennaqua",
		SeriesRaw: "2B",
		LeagueID:  "NSTF",
	})
	require.NoError(t, err)

	assert.Equal(t, resolver.StatusResolved, result.Status)
	assert.Equal(t, "n1", result.PlayerID)
	assert.Equal(t, resolver.TierPrimary, result.Tier)
	require.Len(t, dir.SearchCalls, 1)
	assert.Equal(t, "Tennaqua S2B", dir.SearchCalls[0].Series)
}
