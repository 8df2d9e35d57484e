package resolver

// Finalize turns the ordered per-tier outcomes into the final MatchResult.
// The policy: the earliest tier with exactly one candidate wins outright;
// failing that, the earliest tier with two or more candidates is reported as
// the ambiguity (earlier tiers carry stricter constraints, so their candidate
// sets are the most precise ones available); failing that, the query is
// unresolved. Pure function, so the policy is testable apart from the
// tier-querying mechanics.
func Finalize(outcomes []TierOutcome) MatchResult {
	for _, o := range outcomes {
		if len(o.Candidates) == 1 {
			return MatchResult{
				Status:   StatusResolved,
				PlayerID: o.Candidates[0].ID,
				Tier:     o.Tier,
			}
		}
	}
	for _, o := range outcomes {
		if len(o.Candidates) >= 2 {
			return MatchResult{
				Status:     StatusAmbiguous,
				Tier:       o.Tier,
				Candidates: o.Candidates,
			}
		}
	}
	return MatchResult{Status: StatusUnresolved}
}
