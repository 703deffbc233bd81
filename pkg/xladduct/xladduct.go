// Package xladduct provides a high-level API for building nucleic-acid
// cross-link adduct search spaces.
//
// The generator enumerates every chemically plausible nucleotide chain
// up to a configured length, applies the configured modifications, and
// filters the combinations against the restriction rules. The result
// maps each canonical empirical formula to its monoisotopic mass and
// to the set of nucleotide strings that produce it.
//
// Example usage:
//
//	res, err := xladduct.Generate(xladduct.Config{
//	    TargetNucleotides:   []string{"A=C10H14N5O7P", "U=C9H13N2O9P"},
//	    NucleotideGroups:    []string{"ACGU"},
//	    CanCrossLink:        "U",
//	    SequenceRestriction: "AU",
//	    MaxLength:           2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range res.Formulas() {
//	    fmt.Println(f, res.FormulaToMass[f])
//	}
package xladduct

import (
	"log/slog"

	"github.com/lennykovac/xladduct/internal/adduct"
	"github.com/lennykovac/xladduct/internal/formula"
)

// Re-export types for convenience
type (
	Config    = adduct.Config
	Generator = adduct.Generator
	Result    = adduct.Result
	StringSet = adduct.StringSet
	Formula   = formula.Formula
)

// NewGenerator creates a generator with the default logger.
func NewGenerator(cfg Config) *Generator {
	return adduct.New(cfg, nil)
}

// NewGeneratorWithLogger creates a generator that logs through the
// given logger.
func NewGeneratorWithLogger(cfg Config, logger *slog.Logger) *Generator {
	return adduct.New(cfg, logger)
}

// Generate builds the adduct search space for a configuration.
func Generate(cfg Config) (*Result, error) {
	return adduct.New(cfg, nil).Generate()
}

// ParseFormula parses an empirical formula string such as "C9H13N2O9P"
// or "(13)C2H4O+".
func ParseFormula(s string) (Formula, error) {
	return formula.Parse(s)
}

// MonoisotopicMass parses a formula and returns its monoisotopic mass.
func MonoisotopicMass(s string) (float64, error) {
	f, err := formula.Parse(s)
	if err != nil {
		return 0, err
	}
	return f.MonoMass(), nil
}

// Version returns the library version.
func Version() string {
	return "1.0.0"
}
