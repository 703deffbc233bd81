// Package nucleotide holds the configurable chemistry of the adduct
// generator: the nucleotide library (symbol to monophosphate
// formula), per-nucleotide modification specs, substitution rules,
// and nucleotide groups.
//
// Symbols are single bytes. A lowercase symbol marks a variant that
// must carry the cross-link (e.g. a sugar), which the restriction
// filter limits to one per chain.
package nucleotide

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lennykovac/xladduct/internal/formula"
)

// Library maps nucleotide symbols to the empirical formulas of their
// monophosphates.
type Library struct {
	formulas map[byte]formula.Formula
}

// ParseLibrary reads "symbol=formula" definitions, e.g.
// "U=C9H13N2O9P". A repeated symbol keeps the last definition.
func ParseLibrary(definitions []string) (*Library, error) {
	lib := &Library{formulas: make(map[byte]formula.Formula, len(definitions))}
	for _, d := range definitions {
		sym, body, ok := strings.Cut(d, "=")
		if !ok || len(sym) != 1 {
			return nil, &MalformedDefinitionError{Definition: d}
		}
		f, err := formula.Parse(body)
		if err != nil {
			return nil, fmt.Errorf("nucleotide %q: %w", sym, err)
		}
		lib.formulas[sym[0]] = f
	}
	return lib, nil
}

// Formula returns the monophosphate formula for a symbol.
func (l *Library) Formula(sym byte) (formula.Formula, bool) {
	f, ok := l.formulas[sym]
	return f, ok
}

// Symbols returns all defined symbols in sorted order. Iterating in
// this order keeps generation deterministic.
func (l *Library) Symbols() []byte {
	syms := make([]byte, 0, len(l.formulas))
	for sym := range l.formulas {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Len returns the number of defined nucleotides.
func (l *Library) Len() int { return len(l.formulas) }
