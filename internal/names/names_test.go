package names_test

import (
	"testing"

	"github.com/mauv0809/rosterlink/internal/names"
	"github.com/stretchr/testify/assert"
)

func TestFirstNameMatchesExact(t *testing.T) {
	m := names.NewMatcher()

	assert.True(t, m.FirstNameMatches("Bob", "bob"))
	assert.True(t, m.FirstNameMatches(" Bob ", "BOB"))
	assert.False(t, m.FirstNameMatches("", "Bob"))
	assert.False(t, m.FirstNameMatches("Bob", ""))
}

func TestFirstNameMatchesNicknames(t *testing.T) {
	m := names.NewMatcher()

	assert.True(t, m.FirstNameMatches("Bob", "Robert"))
	assert.True(t, m.FirstNameMatches("Robert", "Bob"))
	assert.True(t, m.FirstNameMatches("Bob", "Bobby"))
	assert.True(t, m.FirstNameMatches("Bill", "William"))
	assert.True(t, m.FirstNameMatches("Peggy", "Margaret"))

	// Groups never bleed into each other.
	assert.False(t, m.FirstNameMatches("Bill", "Robert"))
	assert.False(t, m.FirstNameMatches("Dave", "Dan"))
}

func TestFirstNameMatchesFuzzy(t *testing.T) {
	m := names.NewMatcher()

	// Not curated: governed purely by the edit-distance ratio.
	assert.True(t, m.FirstNameMatches("Robert", "Roberto"))
	assert.True(t, m.FirstNameMatches("Jonathan", "Jonathon"))

	// Distinct common names stay distinct.
	assert.False(t, m.FirstNameMatches("John", "Joan"))
	assert.False(t, m.FirstNameMatches("Mark", "Mary"))
}

func TestLastNameMatchesStrict(t *testing.T) {
	m := names.NewMatcher()

	assert.True(t, m.LastNameMatches("Smith", "smith"))
	assert.True(t, m.LastNameMatches("  Smith ", "SMITH"))
	assert.True(t, m.LastNameMatches("O'Brien", "OBrien"))
	assert.True(t, m.LastNameMatches("Muñoz", "Munoz"))

	// No fuzziness on last names, ever.
	assert.False(t, m.LastNameMatches("Smith", "Smyth"))
	assert.False(t, m.LastNameMatches("Smith", ""))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "bob smith", names.NormalizeKey("  Bob   Smith "))
	assert.Equal(t, "obrien", names.NormalizeKey("O'Brien"))
	assert.Equal(t, "munoz", names.NormalizeKey("Muñoz"))
	assert.Equal(t, "", names.NormalizeKey("  ...  "))
}
