package resolver

// tierSpec declares which constraints one tier applies. Last name and league
// are always on.
type tierSpec struct {
	tier      Tier
	useFirst  bool
	useClub   bool
	useSeries bool
}

// tierOrder is the resolution contract. The constraint drops are asymmetric
// on purpose: series is treated as more discriminative than club, so
// FALLBACK1 keeps series while dropping club, and club only carries a tier
// alone at FALLBACK3. Do not regularize this to one-drop-per-tier.
var tierOrder = []tierSpec{
	{tier: TierPrimary, useFirst: true, useClub: true, useSeries: true},
	{tier: TierFallback1, useFirst: false, useClub: false, useSeries: true},
	{tier: TierFallback2, useFirst: false, useClub: true, useSeries: true},
	{tier: TierFallback3, useFirst: false, useClub: true, useSeries: false},
}

// constraints lists the active constraint names for log records.
func (s tierSpec) constraints() []string {
	out := []string{"last_name", "league"}
	if s.useFirst {
		out = append(out, "first_name")
	}
	if s.useClub {
		out = append(out, "club")
	}
	if s.useSeries {
		out = append(out, "series")
	}
	return out
}
