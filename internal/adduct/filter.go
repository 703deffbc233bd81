package adduct

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lennykovac/xladduct/internal/nucleotide"
)

// restrictionFilter prunes (formula, nucleotide-string) pairs that
// violate the domain rules.
type restrictionFilter struct {
	canXL     string
	groups    nucleotide.Groups
	maxLength int
	targets   []string
	log       *slog.Logger
}

// compositionMass identifies a chain by its sorted nucleotide
// composition and mass; anagram chains with identical mass collapse
// onto one entry.
type compositionMass struct {
	composition string
	mass        float64
}

// apply removes every pair failing one of the ordered predicates,
// then rebuilds both result maps without the emptied keys. Iteration
// runs over formula keys in canonical-string sort order and ambiguity
// strings in lexicographic order; the dedup rule keeps the first
// accepted composition, so this order is part of the contract.
func (f *restrictionFilter) apply(res *Result) {
	type pair struct {
		formula string
		label   string
	}
	var violations []pair
	accepted := make(map[compositionMass]struct{})

	for _, key := range res.Formulas() {
		mass := res.FormulaToMass[key]
		for _, label := range res.Ambiguities[key].Sorted() {
			comp := composition(label)

			// At most one mandatory cross-link site (lowercase) per chain.
			if countLower(comp) >= 2 {
				violations = append(violations, pair{key, label})
				continue
			}
			if !strings.ContainsAny(comp, f.canXL) {
				violations = append(violations, pair{key, label})
				continue
			}
			if len(comp) > f.maxLength {
				violations = append(violations, pair{key, label})
				continue
			}
			// Chains may not mix nucleotide groups (e.g. RNA and DNA).
			if f.groups.CountContaining(comp) > 1 {
				violations = append(violations, pair{key, label})
				continue
			}
			if !f.containedInAnyTarget(comp) {
				violations = append(violations, pair{key, label})
				continue
			}
			cm := compositionMass{composition: comp, mass: mass}
			if _, dup := accepted[cm]; dup {
				violations = append(violations, pair{key, label})
				continue
			}
			accepted[cm] = struct{}{}
		}
	}

	for _, v := range violations {
		delete(res.Ambiguities[v.formula], v.label)
		f.log.Debug("filtered adduct", "formula", v.formula, "nucleotide", v.label)
	}

	// Rebuild fresh maps so the key sets stay synchronized.
	masses := make(map[string]float64, len(res.FormulaToMass))
	ambiguities := make(map[string]StringSet, len(res.Ambiguities))
	for key, set := range res.Ambiguities {
		if len(set) == 0 {
			continue
		}
		masses[key] = res.FormulaToMass[key]
		ambiguities[key] = set
	}
	res.FormulaToMass = masses
	res.Ambiguities = ambiguities
}

// containedInAnyTarget reports whether the sorted composition occurs
// as a k-mer of at least one target sequence, comparing windows as
// anagrams (multiset equality), not ordered substrings.
func (f *restrictionFilter) containedInAnyTarget(comp string) bool {
	for _, seq := range f.targets {
		if containsAnagram(seq, comp) {
			return true
		}
	}
	return false
}

// containsAnagram slides a window of len(query) over seq and compares
// the sorted window to the already-sorted query. An empty query is
// contained in every sequence.
func containsAnagram(seq, query string) bool {
	if query == "" {
		return true
	}
	for l := 0; l+len(query) <= len(seq); l++ {
		if sortBytes(seq[l:l+len(query)]) == query {
			return true
		}
	}
	return false
}

// composition strips the modification suffix (everything from the
// first '+' or '-') and sorts the remaining symbols, so anagram
// chains compare equal.
func composition(label string) string {
	if p := strings.IndexAny(label, "+-"); p >= 0 {
		label = label[:p]
	}
	return sortBytes(label)
}

// sortCompositionPrefix sorts the nucleotide symbols of a label up to
// the first modification sign, leaving the suffix untouched.
func sortCompositionPrefix(label string) string {
	p := strings.IndexAny(label, "+-")
	if p < 0 {
		return sortBytes(label)
	}
	return sortBytes(label[:p]) + label[p:]
}

func sortBytes(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

func countLower(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			n++
		}
	}
	return n
}
