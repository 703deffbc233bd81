// Package adduct builds the cross-link adduct search space: every
// chemically plausible combination of nucleotides and modifications
// up to a maximum chain length, keyed by canonical empirical formula
// and annotated with the ambiguous nucleotide strings that collapse
// to it.
package adduct

import (
	"log/slog"
	"strings"

	"github.com/lennykovac/xladduct/internal/formula"
	"github.com/lennykovac/xladduct/internal/nucleotide"
)

// Config carries the full generator configuration. All inputs are
// in-memory strings; nothing is read from files.
type Config struct {
	// TargetNucleotides defines the alphabet as "symbol=formula"
	// monophosphate definitions, e.g. "U=C9H13N2O9P".
	TargetNucleotides []string
	// NucleotideGroups lists group alphabets (e.g. "ACGU", "ACGT");
	// chains may not mix symbols from different groups.
	NucleotideGroups []string
	// CanCrossLink is the set of cross-linkable symbols; every kept
	// chain must contain at least one.
	CanCrossLink string
	// Mappings are "source->target" substitution rules.
	Mappings []string
	// Modifications are "symbol:+formula-formula..." specs.
	Modifications []string
	// SequenceRestriction limits chains to substrings (by nucleotide
	// composition) of its expansions. When empty, all combinations of
	// the mapping sources up to MaxLength are allowed.
	SequenceRestriction string
	// CysteineAdduct injects the fixed DTT adduct, bypassing all
	// filters.
	CysteineAdduct bool
	// MaxLength bounds the chain length. Callers must keep it small;
	// the search space grows exponentially with it.
	MaxLength int
}

// Generator produces adduct search spaces from a Config.
type Generator struct {
	cfg Config
	log *slog.Logger
}

// New creates a Generator. A nil logger falls back to slog.Default().
func New(cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{cfg: cfg, log: logger}
}

// water is subtracted once per condensation bond.
var water = formula.MustParse("H2O")

const cysteineAdductLabel = "C4H8S2O2"

var (
	cysteineAdductFormula = formula.MustParse(cysteineAdductLabel)
	cysteineFormulaKey    = cysteineAdductFormula.String()
)

// Generate runs the full pipeline: parse configuration, expand target
// sequences, build modified single nucleotides, extend chains,
// filter, and assemble the result. Any configuration error aborts
// with no partial result.
func (g *Generator) Generate() (*Result, error) {
	lib, err := nucleotide.ParseLibrary(g.cfg.TargetNucleotides)
	if err != nil {
		return nil, err
	}
	rules, sources, err := nucleotide.ParseRules(g.cfg.Mappings)
	if err != nil {
		return nil, err
	}
	mods, err := nucleotide.ParseModificationSpecs(g.cfg.Modifications)
	if err != nil {
		return nil, err
	}

	restriction := g.cfg.SequenceRestriction
	if restriction == "" {
		restriction = autoRestriction(sources, g.cfg.MaxLength)
	}
	restriction = rules.Reduce(restriction)
	if len(rules) > 0 && restriction == "" {
		g.log.Warn("no restriction sequence but multiple substitution targets; may generate a huge number of adduct sequences")
	}

	targets := ExpandTargetSequences(restriction, rules)
	g.log.Info("target sequences expanded", "count", len(targets))
	if g.cfg.SequenceRestriction != "" {
		for _, seq := range targets {
			g.log.Info("target sequence", "sequence", truncate(seq, 60))
		}
	}

	res := newResult()
	actual := g.modifiedNucleotides(lib, mods, res)
	all := g.extendChains(lib, actual, res)
	for _, f := range all {
		res.FormulaToMass[f.String()] = f.MonoMass()
	}

	g.log.Info("filtering on restrictions", "formulas", len(res.FormulaToMass))
	filter := &restrictionFilter{
		canXL:     g.cfg.CanCrossLink,
		groups:    nucleotide.Groups(g.cfg.NucleotideGroups),
		maxLength: g.cfg.MaxLength,
		targets:   targets,
		log:       g.log,
	}
	filter.apply(res)

	if g.cfg.CysteineAdduct {
		res.cysteineAdduct = true
		res.FormulaToMass[cysteineFormulaKey] = cysteineAdductFormula.MonoMass()
		res.addAmbiguity(cysteineFormulaKey, cysteineAdductLabel)
	}

	for _, line := range res.Summary() {
		g.log.Info(line)
	}
	g.log.Info("finished generating adduct masses", "adducts", len(res.FormulaToMass))
	return res, nil
}

// modifiedNucleotides builds the single-nucleotide combinations: for
// every nucleotide, each configured modification spec in input order
// and then the implicit unmodified case. Within one nucleotide, a
// second spec producing an already-seen formula is dropped with a
// warning (first write wins).
func (g *Generator) modifiedNucleotides(lib *nucleotide.Library, mods nucleotide.ModificationTable, res *Result) []formula.Formula {
	var combos []formula.Formula
	for _, sym := range lib.Symbols() {
		base, _ := lib.Formula(sym)
		g.log.Info("nucleotide", "symbol", string(sym))

		entries := make([]nucleotide.Modification, 0, len(mods[sym])+1)
		entries = append(entries, mods[sym]...)
		entries = append(entries, nucleotide.Modification{}) // unmodified case

		seen := make(map[string]struct{})
		for _, mod := range entries {
			sum := mod.Apply(base)
			label := string(sym) + mod.Label()
			key := sum.String()
			if _, dup := seen[key]; dup {
				g.log.Warn("nucleotide and formula combination occurred several times, skipping",
					"nucleotide", label, "formula", key)
				continue
			}
			seen[key] = struct{}{}
			combos = append(combos, sum)
			res.addAmbiguity(key, label)
			g.log.Info("modified nucleotide", "nucleotide", label, "formula", key)
		}
	}
	return combos
}

// extendChains grows the single-nucleotide combinations into chains
// of up to MaxLength nucleotides. Each round prepends one unmodified
// nucleotide and subtracts one water (condensation), so at most one
// position per chain carries a modification. Ambiguity strings
// inherit from the extended combination with the new symbol
// prepended.
func (g *Generator) extendChains(lib *nucleotide.Library, actual []formula.Formula, res *Result) []formula.Formula {
	all := append([]formula.Formula(nil), actual...)
	for round := 1; round < g.cfg.MaxLength; round++ {
		next := make([]formula.Formula, 0, len(actual)*lib.Len())
		for _, sym := range lib.Symbols() {
			base, _ := lib.Formula(sym)
			for _, prev := range actual {
				ext := base.Add(prev).Sub(water)
				next = append(next, ext)
				all = append(all, ext)

				key := ext.String()
				for _, s := range res.Ambiguities[prev.String()].Sorted() {
					res.addAmbiguity(key, string(sym)+s)
					g.log.Debug("chain extended", "nucleotide", string(sym)+s, "formula", key)
				}
			}
		}
		actual = next
	}
	return all
}

// autoRestriction concatenates every source-symbol combination up to
// maxLength into one unseparated sequence; the containment check
// slides over it as a single string, which downstream numbers depend
// on.
func autoRestriction(sources []byte, maxLength int) string {
	if len(sources) == 0 {
		return ""
	}

	all := make([]string, 0, len(sources))
	actual := make([]string, 0, len(sources))
	for _, s := range sources {
		all = append(all, string(s))
		actual = append(actual, string(s))
	}
	for i := 1; i <= maxLength-1; i++ {
		next := make([]string, 0, len(actual)*len(sources))
		for _, s := range sources {
			for _, c := range actual {
				next = append(next, string(s)+c)
				all = append(all, string(s)+c)
			}
		}
		actual = next
	}
	return strings.Join(all, "")
}

func truncate(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n] + "..."
}
