package league

import (
	"regexp"
	"strings"
)

// Family identifies a league naming-convention group. Each family carries its
// own ordered rule table, since every league spells its divisions differently.
type Family string

const (
	APTAChicago Family = "APTA_CHICAGO"
	NSTF        Family = "NSTF"
)

// Rule maps one raw series shape onto the family's canonical key. Rules are
// immutable data; their order within a family is the precedence contract.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Render  func(club string, groups []string) string
}

// Normalizer converts raw, league-specific series strings ("Chicago 19",
// "Series 2B", "19") into one canonical key per league family. It holds only
// read-only rule tables and is safe for concurrent use.
type Normalizer struct {
	rules map[Family][]Rule
}

// NewNormalizer builds the default rule tables. Within each family the
// pass-through rule for an already-canonical key comes first, then the
// explicit prefixed forms, then the bare-number form, so precedence does not
// depend on input shape.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		rules: map[Family][]Rule{
			APTAChicago: {
				{
					Name:    "canonical",
					Pattern: regexp.MustCompile(`^(.+?)\s*-\s*(\d+)$`),
					Render: func(club string, groups []string) string {
						return club + " - " + groups[2]
					},
				},
				{
					Name:    "prefixed",
					Pattern: regexp.MustCompile(`(?i)^(?:chicago|series|division)\s+(\d+)$`),
					Render: func(club string, groups []string) string {
						return club + " - " + groups[1]
					},
				},
				{
					Name:    "bare",
					Pattern: regexp.MustCompile(`^(\d+)$`),
					Render: func(club string, groups []string) string {
						return club + " - " + groups[1]
					},
				},
			},
			NSTF: {
				{
					Name:    "canonical",
					Pattern: regexp.MustCompile(`^(.+?)\s+S(\d+[A-Za-z]?)$`),
					Render: func(club string, groups []string) string {
						return club + " S" + strings.ToUpper(groups[2])
					},
				},
				{
					Name:    "prefixed",
					Pattern: regexp.MustCompile(`(?i)^series\s+(\d+[A-Za-z]?)$`),
					Render: func(club string, groups []string) string {
						return club + " S" + strings.ToUpper(groups[1])
					},
				},
				{
					Name:    "bare",
					Pattern: regexp.MustCompile(`(?i)^(\d+[A-Za-z]?)$`),
					Render: func(club string, groups []string) string {
						return club + " S" + strings.ToUpper(groups[1])
					},
				},
			},
		},
	}
}

// Normalize maps a raw series string onto the family's canonical key,
// interpolating the cleaned club name. The boolean is false when no rule
// matched; callers decide whether to fall back to the raw string.
func (n *Normalizer) Normalize(raw, club string, family Family) (string, bool) {
	raw = strings.TrimSpace(raw)
	club = CleanClub(club)
	if raw == "" || club == "" {
		return "", false
	}

	for _, rule := range n.rules[family] {
		m := rule.Pattern.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		return rule.Render(club, m), true
	}
	return "", false
}

// CleanClub trims and collapses whitespace in a club name. Display casing is
// preserved; comparisons go through EqualClubs instead.
func CleanClub(club string) string {
	return strings.Join(strings.Fields(club), " ")
}

// EqualClubs compares two club names case-insensitively after cleaning.
func EqualClubs(a, b string) bool {
	return strings.EqualFold(CleanClub(a), CleanClub(b))
}
