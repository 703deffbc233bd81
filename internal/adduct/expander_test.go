package adduct

import (
	"testing"

	"github.com/lennykovac/xladduct/internal/nucleotide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTargetSequencesNoRules(t *testing.T) {
	out := ExpandTargetSequences("AU", nucleotide.Rules{})
	assert.Equal(t, []string{"AU"}, out)
}

func TestExpandTargetSequencesCombinatorial(t *testing.T) {
	rules, _, err := nucleotide.ParseRules([]string{"U->U", "U->T"})
	require.NoError(t, err)

	out := ExpandTargetSequences("UU", rules)
	assert.ElementsMatch(t, []string{"UU", "UT", "TU", "TT"}, out)
}

func TestExpandTargetSequencesForcedSubstitution(t *testing.T) {
	// Without a self-target every source position must be rewritten.
	rules := nucleotide.Rules{'U': {'T'}}

	out := ExpandTargetSequences("UU", rules)
	assert.Equal(t, []string{"TT"}, out)
}

func TestContainsAnagram(t *testing.T) {
	assert.True(t, containsAnagram("AUG", ""))
	assert.True(t, containsAnagram("AUG", "AU"))
	assert.True(t, containsAnagram("AUG", "GU"), "window is compared as a multiset")
	assert.False(t, containsAnagram("AUG", "AG"), "symbols must be adjacent")
	assert.False(t, containsAnagram("AU", "AUG"))
}

func TestComposition(t *testing.T) {
	assert.Equal(t, "AU", composition("UA"))
	assert.Equal(t, "AU", composition("UA+H2O-H3PO4"))
	assert.Equal(t, "U", composition("U-H2O"))
	assert.Equal(t, "ANU", composition("UNA"))
}

func TestSortCompositionPrefix(t *testing.T) {
	assert.Equal(t, "AU", sortCompositionPrefix("UA"))
	assert.Equal(t, "AU+H2O", sortCompositionPrefix("UA+H2O"))
	assert.Equal(t, "U-H2O", sortCompositionPrefix("U-H2O"))
}
