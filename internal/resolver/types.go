package resolver

import "github.com/mauv0809/rosterlink/internal/directory"

// Status is the outcome of a finished resolution.
type Status string

const (
	StatusResolved   Status = "RESOLVED"
	StatusAmbiguous  Status = "AMBIGUOUS"
	StatusUnresolved Status = "UNRESOLVED"
)

// Tier identifies one ordered attempt in the multi-tier resolver.
type Tier int

const (
	TierPrimary Tier = iota + 1
	TierFallback1
	TierFallback2
	TierFallback3
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "PRIMARY"
	case TierFallback1:
		return "FALLBACK1"
	case TierFallback2:
		return "FALLBACK2"
	case TierFallback3:
		return "FALLBACK3"
	default:
		return "UNKNOWN"
	}
}

// MatchQuery is the caller-supplied identity for one resolution attempt. It
// is constructed per attempt and never mutated.
type MatchQuery struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Club      string `json:"club"`
	SeriesRaw string `json:"series"`
	LeagueID  string `json:"league_id"`
}

// MatchResult is the tagged outcome of a resolution. PlayerID and Tier are
// set for resolved results; Candidates and Tier for ambiguous ones.
type MatchResult struct {
	Status     Status                   `json:"status"`
	PlayerID   string                   `json:"player_id,omitempty"`
	Tier       Tier                     `json:"tier,omitempty"`
	Candidates []directory.PlayerRecord `json:"candidates,omitempty"`
}

// TierOutcome records what one tier produced, in tier order. The ordered
// slice of outcomes is the sole input to Finalize.
type TierOutcome struct {
	Tier       Tier
	Candidates []directory.PlayerRecord
}
