package nucleotide

import "strings"

// Groups is the set of nucleotide group alphabets, e.g. RNA "ACGU"
// and DNA "ACGT". Chains mixing symbols from more than one group are
// rejected by the restriction filter.
type Groups []string

// CountContaining reports how many groups share at least one symbol
// with the composition.
func (g Groups) CountContaining(composition string) int {
	n := 0
	for _, grp := range g {
		if strings.ContainsAny(composition, grp) {
			n++
		}
	}
	return n
}
