package nucleotide

import (
	"fmt"
	"strings"

	"github.com/lennykovac/xladduct/internal/formula"
)

// SubFormula is one signed term of a modification spec.
type SubFormula struct {
	Formula     formula.Formula
	Subtractive bool
}

// Modification is the ordered list of signed sub-formulas parsed from
// one spec. An empty Modification is the unmodified case.
type Modification []SubFormula

// Apply adds and subtracts the modification's terms to base, in
// order.
func (m Modification) Apply(base formula.Formula) formula.Formula {
	sum := base
	for _, sf := range m {
		if sf.Subtractive {
			sum = sum.Sub(sf.Formula)
		} else {
			sum = sum.Add(sf.Formula)
		}
	}
	return sum
}

// Label returns the signed suffix the modification appends to a
// nucleotide symbol, e.g. "+H2O-H3O4P". Sub-formulas render in
// canonical form.
func (m Modification) Label() string {
	var b strings.Builder
	for _, sf := range m {
		if sf.Subtractive {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		b.WriteString(sf.Formula.String())
	}
	return b.String()
}

// ModificationTable maps a nucleotide symbol to its configured
// modifications in input order. Parallel entries are kept, never
// merged.
type ModificationTable map[byte][]Modification

// ParseModificationSpecs reads specs of the form
// "<symbol>:<sign><formula><sign><formula>...", e.g. "U:+H2O-H2O".
// A missing leading sign on the first sub-formula defaults to
// additive. Every sub-formula is normalized to neutral charge.
func ParseModificationSpecs(specs []string) (ModificationTable, error) {
	table := make(ModificationTable)
	for _, spec := range specs {
		if len(spec) < 2 || spec[1] != ':' {
			return nil, &MalformedSpecError{Spec: spec}
		}
		sym := spec[0]

		var mod Modification
		for _, tok := range splitSigned(spec[2:]) {
			subtractive := false
			switch tok[0] {
			case '-':
				subtractive = true
				tok = tok[1:]
			case '+':
				tok = tok[1:]
			}
			f, err := formula.Parse(tok)
			if err != nil {
				return nil, fmt.Errorf("modification spec %q: %w", spec, err)
			}
			mod = append(mod, SubFormula{Formula: f.WithCharge(0), Subtractive: subtractive})
		}
		table[sym] = append(table[sym], mod)
	}
	return table, nil
}

// splitSigned splits "+H2O-H3PO4" into sign-prefixed tokens. A sign
// at position 0 belongs to the first token; an empty input yields no
// tokens.
func splitSigned(s string) []string {
	var out []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			out = append(out, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
