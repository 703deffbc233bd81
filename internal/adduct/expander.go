package adduct

import "github.com/lennykovac/xladduct/internal/nucleotide"

// ExpandTargetSequences enumerates every sequence obtainable from the
// restriction sequence by independently substituting source symbols
// with their rule targets at each position. A produced sequence is
// kept only if every remaining source symbol is one of its own
// targets, which prevents partially substituted intermediates from
// being double-counted.
//
// The search runs on an explicit worklist so a long restriction
// sequence cannot exhaust the call stack. With an empty rule map the
// input sequence is returned unchanged. Duplicates are not removed.
func ExpandTargetSequences(restriction string, rules nucleotide.Rules) []string {
	type state struct {
		seq string
		pos int
	}

	work := []state{{seq: restriction}}
	var out []string
	for len(work) > 0 {
		st := work[len(work)-1]
		work = work[:len(work)-1]

		for pos := st.pos; pos < len(st.seq); pos++ {
			targets := rules.Targets(st.seq[pos])
			for _, t := range targets {
				if t == st.seq[pos] {
					continue // covered by the unsubstituted branch
				}
				next := []byte(st.seq)
				next[pos] = t
				work = append(work, state{seq: string(next), pos: pos + 1})
			}
		}

		if consistent(st.seq, rules) {
			out = append(out, st.seq)
		}
	}
	return out
}

// consistent reports whether every symbol of seq is either not a rule
// source or one of its own targets.
func consistent(seq string, rules nucleotide.Rules) bool {
	for i := 0; i < len(seq); i++ {
		if len(rules.Targets(seq[i])) == 0 {
			continue
		}
		if !rules.IsOwnTarget(seq[i]) {
			return false
		}
	}
	return true
}
