package adduct

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StringSet is a set of nucleotide-style strings.
type StringSet map[string]struct{}

// Add inserts a value into the set.
func (s StringSet) Add(v string) { s[v] = struct{}{} }

// Has reports whether the set contains v.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the set's values in lexicographic order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Result is the generated search space: two maps keyed by canonical
// formula string with identical key sets. FormulaToMass holds the
// monoisotopic mass of each formula; Ambiguities holds every
// nucleotide-style string (chain plus signed modification suffixes)
// that produced it.
type Result struct {
	FormulaToMass map[string]float64
	Ambiguities   map[string]StringSet

	cysteineAdduct bool
}

func newResult() *Result {
	return &Result{
		FormulaToMass: make(map[string]float64),
		Ambiguities:   make(map[string]StringSet),
	}
}

func (r *Result) addAmbiguity(formulaKey, label string) {
	set, ok := r.Ambiguities[formulaKey]
	if !ok {
		set = make(StringSet)
		r.Ambiguities[formulaKey] = set
	}
	set.Add(label)
}

// Formulas returns the formula keys in canonical-string sort order.
// This order is part of the observable contract: the restriction
// filter's dedup rule keeps the first composition seen in it.
func (r *Result) Formulas() []string {
	keys := make([]string, 0, len(r.FormulaToMass))
	for key := range r.FormulaToMass {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Summary renders a numbered human-readable listing of the adducts,
// one line per formula with its de-duplicated, prefix-sorted
// nucleotide strings. It is a diagnostic aid; the maps are the
// contract.
func (r *Result) Summary() []string {
	lines := make([]string, 0, len(r.FormulaToMass))
	index := 1
	for _, key := range r.Formulas() {
		mass := formatMass(r.FormulaToMass[key])
		if r.cysteineAdduct && key == cysteineFormulaKey {
			lines = append(lines, fmt.Sprintf("precursor adduct %d : %s %s ( cysteine adduct )", index, key, mass))
			index++
			continue
		}

		printed := make(StringSet)
		var labels []string
		for _, s := range r.Ambiguities[key].Sorted() {
			sorted := sortCompositionPrefix(s)
			if printed.Has(sorted) {
				continue
			}
			printed.Add(sorted)
			labels = append(labels, sorted)
		}
		lines = append(lines, fmt.Sprintf("precursor adduct %d : %s %s ( %s )", index, key, mass, strings.Join(labels, " ")))
		index++
	}
	return lines
}

func formatMass(m float64) string {
	return strconv.FormatFloat(m, 'g', 6, 64)
}
