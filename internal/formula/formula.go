// Package formula provides empirical chemical formulas with exact
// monoisotopic mass calculation.
//
// A formula is an immutable multiset of (element, isotope, count)
// entries plus a charge. Formulas support addition and subtraction
// (counts may go negative to model losses), canonical string
// rendering, and monoisotopic mass computation.
package formula

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// element identifies one entry of the multiset. isotope 0 means the
// principal (most abundant) isotope.
type element struct {
	symbol  string
	isotope int
}

// Formula is an immutable empirical formula. The zero value is the
// empty formula.
type Formula struct {
	counts map[element]int
	charge int
}

// ParseError is returned when a formula string is syntactically
// invalid.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid formula %q at position %d: %s", e.Input, e.Pos, e.Msg)
}

// UnknownElementError is returned for element symbols missing from
// the mass table.
type UnknownElementError struct {
	Symbol string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element %q", e.Symbol)
}

// UnknownIsotopeError is returned for isotope tags missing from the
// isotope mass table.
type UnknownIsotopeError struct {
	Symbol  string
	Isotope int
}

func (e *UnknownIsotopeError) Error() string {
	return fmt.Sprintf("unknown isotope (%d)%s", e.Isotope, e.Symbol)
}

// Parse reads an empirical formula such as "C10H14N5O7P",
// "(13)C2H6O" or "H3O+". An element is an uppercase letter with an
// optional lowercase letter, followed by an optional count
// (default 1) and optionally preceded by a parenthesized isotope
// number. A trailing run of '+' or '-' characters sets the charge.
func Parse(s string) (Formula, error) {
	counts := make(map[element]int)
	charge := 0

	i := 0
	for i < len(s) {
		if s[i] == '+' || s[i] == '-' {
			// Charge suffix: nothing but signs may follow.
			for ; i < len(s); i++ {
				switch s[i] {
				case '+':
					charge++
				case '-':
					charge--
				default:
					return Formula{}, &ParseError{Input: s, Pos: i, Msg: "unexpected character after charge sign"}
				}
			}
			break
		}

		isotope := 0
		if s[i] == '(' {
			end := strings.IndexByte(s[i:], ')')
			if end < 0 {
				return Formula{}, &ParseError{Input: s, Pos: i, Msg: "unclosed isotope tag"}
			}
			n, err := strconv.Atoi(s[i+1 : i+end])
			if err != nil || n <= 0 {
				return Formula{}, &ParseError{Input: s, Pos: i, Msg: "isotope tag must be a positive integer"}
			}
			isotope = n
			i += end + 1
		}

		if i >= len(s) || s[i] < 'A' || s[i] > 'Z' {
			return Formula{}, &ParseError{Input: s, Pos: i, Msg: "expected element symbol"}
		}
		start := i
		i++
		if i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
			i++
		}
		sym := s[start:i]

		count := 1
		if digits := countDigits(s[i:]); digits > 0 {
			count, _ = strconv.Atoi(s[i : i+digits])
			i += digits
		}

		if _, ok := monoMass[sym]; !ok {
			return Formula{}, &UnknownElementError{Symbol: sym}
		}
		el := element{symbol: sym, isotope: isotope}
		if isotope != 0 {
			if _, ok := isotopeMass[el]; !ok {
				return Formula{}, &UnknownIsotopeError{Symbol: sym, Isotope: isotope}
			}
		}
		counts[el] += count
	}

	dropZeros(counts)
	return Formula{counts: counts, charge: charge}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// package-level constants and tests.
func MustParse(s string) Formula {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func dropZeros(counts map[element]int) {
	for el, c := range counts {
		if c == 0 {
			delete(counts, el)
		}
	}
}

func (f Formula) clone() map[element]int {
	counts := make(map[element]int, len(f.counts))
	for el, c := range f.counts {
		counts[el] = c
	}
	return counts
}

// Add returns the element-wise sum of f and o. Charges add as well.
func (f Formula) Add(o Formula) Formula {
	counts := f.clone()
	for el, c := range o.counts {
		counts[el] += c
	}
	dropZeros(counts)
	return Formula{counts: counts, charge: f.charge + o.charge}
}

// Sub returns the element-wise difference of f and o. Counts may go
// negative.
func (f Formula) Sub(o Formula) Formula {
	counts := f.clone()
	for el, c := range o.counts {
		counts[el] -= c
	}
	dropZeros(counts)
	return Formula{counts: counts, charge: f.charge - o.charge}
}

// Charge returns the formula's charge.
func (f Formula) Charge() int { return f.charge }

// WithCharge returns a copy of f with the given charge.
func (f Formula) WithCharge(charge int) Formula {
	return Formula{counts: f.clone(), charge: charge}
}

// IsEmpty reports whether the formula has no element entries.
func (f Formula) IsEmpty() bool { return len(f.counts) == 0 }

// Count returns the count of the principal isotope of the given
// element symbol.
func (f Formula) Count(symbol string) int {
	return f.counts[element{symbol: symbol}]
}

// String renders the canonical form: entries sorted by element
// symbol, isotope-tagged entries after the plain element, counts of 1
// omitted. Charge is not rendered. Example: "C19H25N7O15P2".
func (f Formula) String() string {
	elements := make([]element, 0, len(f.counts))
	for el := range f.counts {
		elements = append(elements, el)
	}
	sort.Slice(elements, func(i, j int) bool {
		if elements[i].symbol != elements[j].symbol {
			return elements[i].symbol < elements[j].symbol
		}
		return elements[i].isotope < elements[j].isotope
	})

	var b strings.Builder
	for _, el := range elements {
		if el.isotope != 0 {
			fmt.Fprintf(&b, "(%d)", el.isotope)
		}
		b.WriteString(el.symbol)
		if c := f.counts[el]; c != 1 {
			b.WriteString(strconv.Itoa(c))
		}
	}
	return b.String()
}

// Equal reports structural equality after canonicalization.
func (f Formula) Equal(o Formula) bool {
	return f.charge == o.charge && f.String() == o.String()
}

// MonoMass returns the monoisotopic mass: each count weighted by the
// exact mass of the principal (or tagged) isotope, plus one proton
// mass per positive charge.
func (f Formula) MonoMass() float64 {
	// Sum in canonical element order so the floating-point result is
	// identical across runs regardless of map iteration order.
	elements := make([]element, 0, len(f.counts))
	for el := range f.counts {
		elements = append(elements, el)
	}
	sort.Slice(elements, func(i, j int) bool {
		if elements[i].symbol != elements[j].symbol {
			return elements[i].symbol < elements[j].symbol
		}
		return elements[i].isotope < elements[j].isotope
	})

	mass := 0.0
	for _, el := range elements {
		m := monoMass[el.symbol]
		if el.isotope != 0 {
			m = isotopeMass[el]
		}
		mass += float64(f.counts[el]) * m
	}
	return mass + float64(f.charge)*ProtonMass
}
