package names

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fuzzyThreshold is the minimum normalized similarity ratio for two first
// names to be considered the same spelling. It only applies after the exact
// and nickname checks have failed, so the fuzzy rule absorbs typos without
// conflating distinct common names.
const fuzzyThreshold = 0.8

// nicknameGroups is the curated equivalence table. Equivalence is symmetric
// and transitive within a group and never across groups.
var nicknameGroups = [][]string{
	{"robert", "rob", "bob", "bobby", "robbie"},
	{"william", "will", "bill", "billy", "willie"},
	{"james", "jim", "jimmy", "jamie"},
	{"john", "jack", "johnny"},
	{"richard", "rich", "rick", "ricky", "dick"},
	{"michael", "mike", "mikey"},
	{"christopher", "chris", "topher"},
	{"thomas", "tom", "tommy"},
	{"charles", "charlie", "chuck"},
	{"joseph", "joe", "joey"},
	{"daniel", "dan", "danny"},
	{"anthony", "tony"},
	{"steven", "stephen", "steve"},
	{"edward", "ed", "eddie"},
	{"theodore", "ted", "teddy"},
	{"andrew", "andy", "drew"},
	{"nicholas", "nick", "nicky"},
	{"matthew", "matt"},
	{"david", "dave", "davey"},
	{"kenneth", "ken", "kenny"},
	{"lawrence", "larry"},
	{"gerald", "jerry"},
	{"samuel", "sam", "sammy"},
	{"benjamin", "ben", "benny"},
	{"alexander", "alex", "xander"},
	{"elizabeth", "liz", "beth", "betsy", "eliza", "lizzie"},
	{"margaret", "meg", "maggie", "peggy", "marge"},
	{"katherine", "catherine", "kate", "katie", "kathy", "cathy"},
	{"jennifer", "jen", "jenny"},
	{"patricia", "pat", "patty", "tricia"},
	{"susan", "sue", "suzy", "susie"},
	{"deborah", "deb", "debbie"},
	{"barbara", "barb", "barbie"},
	{"victoria", "vicky", "tori"},
	{"rebecca", "becky", "becca"},
	{"kimberly", "kim"},
	{"pamela", "pam"},
	{"cynthia", "cindy"},
	{"sandra", "sandy"},
	{"christina", "christine", "tina", "chrissy"},
}

// Matcher answers name-equivalence questions for the resolver. The nickname
// index is built once and treated as read-only, so a single Matcher is safe
// for concurrent resolutions.
type Matcher struct {
	nicknameIndex map[string]int
}

// NewMatcher builds a Matcher over the curated nickname table.
func NewMatcher() *Matcher {
	index := make(map[string]int)
	for group, members := range nicknameGroups {
		for _, name := range members {
			index[name] = group
		}
	}
	return &Matcher{nicknameIndex: index}
}

// FirstNameMatches reports whether a candidate first name is an acceptable
// stand-in for the queried one: exact (case-insensitive), same curated
// nickname group, or near-identical spelling by normalized edit distance.
func (m *Matcher) FirstNameMatches(candidate, query string) bool {
	a := NormalizeKey(candidate)
	b := NormalizeKey(query)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	groupA, okA := m.nicknameIndex[a]
	groupB, okB := m.nicknameIndex[b]
	if okA && okB && groupA == groupB {
		return true
	}

	ratio, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return false
	}
	return ratio >= fuzzyThreshold
}

// LastNameMatches reports whether two last names are the same after key
// normalization. Last name is the primary discriminator, so there is no
// nickname or fuzzy relaxation here.
func (m *Matcher) LastNameMatches(candidate, query string) bool {
	a := NormalizeKey(candidate)
	b := NormalizeKey(query)
	if a == "" || b == "" {
		return false
	}
	return a == b
}

// NormalizeKey produces the comparison key for a name: diacritics stripped,
// punctuation removed, whitespace collapsed, lower-cased. Display strings are
// never built from keys; keys exist only for equality checks.
func NormalizeKey(name string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// Punctuation (O'Brien, Smith-Jones) is dropped entirely.
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
