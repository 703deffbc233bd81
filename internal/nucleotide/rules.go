package nucleotide

import (
	"sort"
	"strings"
)

// Rules maps a source symbol to its substitution targets in input
// order.
type Rules map[byte][]byte

// ParseRules reads "source->target" mappings. It returns the rule map
// and the source symbols in input order (duplicates preserved); the
// sources seed auto-generated restriction sequences.
func ParseRules(mappings []string) (Rules, []byte, error) {
	rules := make(Rules)
	var sources []byte
	for _, m := range mappings {
		src, dst, ok := strings.Cut(m, "->")
		if !ok || len(src) != 1 || len(dst) != 1 {
			return nil, nil, &MalformedRuleError{Rule: m}
		}
		rules[src[0]] = append(rules[src[0]], dst[0])
		sources = append(sources, src[0])
	}
	return rules, sources, nil
}

// Targets returns the substitution targets for a source symbol.
func (r Rules) Targets(src byte) []byte { return r[src] }

// IsOwnTarget reports whether src is listed among its own targets.
func (r Rules) IsOwnTarget(src byte) bool {
	for _, t := range r[src] {
		if t == src {
			return true
		}
	}
	return false
}

// Reduce removes trivial rules in place and returns the rewritten
// restriction sequence: a single self-target drops the rule, a single
// foreign target is substituted textually into seq and then dropped.
// Rules with two or more targets stay and drive expansion. Sources
// are visited in sorted order so rename chains apply
// deterministically.
func (r Rules) Reduce(seq string) string {
	sources := make([]byte, 0, len(r))
	for src := range r {
		sources = append(sources, src)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	for _, src := range sources {
		targets := r[src]
		if len(targets) != 1 {
			continue
		}
		if targets[0] != src {
			seq = strings.ReplaceAll(seq, string(src), string(targets[0]))
		}
		delete(r, src)
	}
	return seq
}
