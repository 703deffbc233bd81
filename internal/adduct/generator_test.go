package adduct

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ampDefinition = "A=C10H14N5O7P"
	umpDefinition = "U=C9H13N2O9P"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func generate(t *testing.T, cfg Config) *Result {
	t.Helper()
	res, err := New(cfg, quietLogger()).Generate()
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestGenerateChainExtension(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{ampDefinition, umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "AU",
		MaxLength:           2,
	})

	require.Len(t, res.FormulaToMass, 2)

	// AU and UA collapse onto one formula; UA loses the dedup.
	assert.Equal(t, []string{"AU"}, res.Ambiguities["C19H25N7O15P2"].Sorted())
	assert.InDelta(t, 653.0883861904, res.FormulaToMass["C19H25N7O15P2"], 1e-8)

	assert.Equal(t, []string{"U"}, res.Ambiguities["C9H13N2O9P"].Sorted())
	assert.InDelta(t, 324.0358665366, res.FormulaToMass["C9H13N2O9P"], 1e-8)
}

func TestGenerateSummaryLines(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{ampDefinition, umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "AU",
		MaxLength:           2,
	})

	assert.Equal(t, []string{
		"precursor adduct 1 : C19H25N7O15P2 653.088 ( AU )",
		"precursor adduct 2 : C9H13N2O9P 324.036 ( U )",
	}, res.Summary())
}

func TestGenerateKeySetsStaySynchronized(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{ampDefinition, umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "AUAU",
		MaxLength:           3,
	})

	require.Equal(t, len(res.FormulaToMass), len(res.Ambiguities))
	for key := range res.FormulaToMass {
		set, ok := res.Ambiguities[key]
		require.True(t, ok, "formula %s missing from ambiguities", key)
		assert.NotEmpty(t, set, "formula %s has an empty ambiguity set", key)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := Config{
		TargetNucleotides:   []string{ampDefinition, umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "AUAU",
		MaxLength:           3,
	}

	first := generate(t, cfg)
	second := generate(t, cfg)
	assert.Equal(t, first.FormulaToMass, second.FormulaToMass)
	assert.Equal(t, first.Ambiguities, second.Ambiguities)
}

func TestGenerateNetZeroModificationKeepsLabel(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		Modifications:       []string{"U:+H2O-H2O"},
		SequenceRestriction: "U",
		MaxLength:           1,
	})

	// The spec and the implicit unmodified case share a formula; the
	// configured spec was seen first and keeps its label.
	require.Len(t, res.FormulaToMass, 1)
	assert.Equal(t, []string{"U+H2O-H2O"}, res.Ambiguities["C9H13N2O9P"].Sorted())
}

func TestGenerateUnmodifiedWithoutSpecs(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "U",
		MaxLength:           1,
	})

	require.Len(t, res.FormulaToMass, 1)
	assert.Equal(t, []string{"U"}, res.Ambiguities["C9H13N2O9P"].Sorted())
}

func TestGenerateDuplicateSpecSkipped(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		Modifications:       []string{"U:+H2O-H2O", "U:"},
		SequenceRestriction: "U",
		MaxLength:           1,
	})

	require.Len(t, res.FormulaToMass, 1)
	assert.Equal(t, []string{"U+H2O-H2O"}, res.Ambiguities["C9H13N2O9P"].Sorted())
}

func TestGenerateTrivialRuleIsDropped(t *testing.T) {
	base := Config{
		TargetNucleotides:   []string{ampDefinition, umpDefinition},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "AU",
		MaxLength:           2,
	}
	withRule := base
	withRule.Mappings = []string{"A->A"}

	assert.Equal(t, generate(t, base).FormulaToMass, generate(t, withRule).FormulaToMass)
}

func TestGenerateRenameRule(t *testing.T) {
	renamed := generate(t, Config{
		TargetNucleotides:   []string{"X=C10H14N5O7P", umpDefinition},
		NucleotideGroups:    []string{"XCGU"},
		CanCrossLink:        "U",
		Mappings:            []string{"A->X"},
		SequenceRestriction: "AU",
		MaxLength:           2,
	})
	direct := generate(t, Config{
		TargetNucleotides:   []string{"X=C10H14N5O7P", umpDefinition},
		NucleotideGroups:    []string{"XCGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "XU",
		MaxLength:           2,
	})

	assert.Equal(t, direct.FormulaToMass, renamed.FormulaToMass)
	assert.Equal(t, direct.Ambiguities, renamed.Ambiguities)
}

func TestGenerateCysteineAdduct(t *testing.T) {
	res := generate(t, Config{
		CysteineAdduct: true,
		MaxLength:      1,
	})

	require.Len(t, res.FormulaToMass, 1)
	assert.InDelta(t, 151.9965708810, res.FormulaToMass["C4H8O2S2"], 1e-8)
	assert.Equal(t, []string{"C4H8S2O2"}, res.Ambiguities["C4H8O2S2"].Sorted())
	assert.Equal(t,
		[]string{"precursor adduct 1 : C4H8O2S2 151.997 ( cysteine adduct )"},
		res.Summary())
}

func TestGenerateRejectsTwoCrossLinkSites(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{ampDefinition, "u=C9H13N2O9P"},
		NucleotideGroups:    []string{"ACGu"},
		CanCrossLink:        "u",
		SequenceRestriction: "Auu",
		MaxLength:           3,
	})

	keys := res.Formulas()
	require.Len(t, keys, 2)
	assert.Equal(t, []string{"Au"}, res.Ambiguities["C19H25N7O15P2"].Sorted())
	assert.Equal(t, []string{"u"}, res.Ambiguities["C9H13N2O9P"].Sorted())
}

func TestGenerateRejectsMixedGroups(t *testing.T) {
	res := generate(t, Config{
		TargetNucleotides:   []string{"T=C10H15N2O8P", umpDefinition},
		NucleotideGroups:    []string{"ACGU", "ACGT"},
		CanCrossLink:        "TU",
		SequenceRestriction: "TU",
		MaxLength:           2,
	})

	// TU mixes RNA and DNA; TT and UU are not contained in the
	// restriction. Only the single nucleotides survive.
	require.Len(t, res.FormulaToMass, 2)
	assert.Equal(t, []string{"T"}, res.Ambiguities["C10H15N2O8P"].Sorted())
	assert.Equal(t, []string{"U"}, res.Ambiguities["C9H13N2O9P"].Sorted())
}

func TestGenerateMalformedConfig(t *testing.T) {
	cases := map[string]Config{
		"bad definition": {TargetNucleotides: []string{"U-C9H13N2O9P"}, MaxLength: 1},
		"bad rule":       {Mappings: []string{"A-G"}, MaxLength: 1},
		"bad spec":       {Modifications: []string{"UH2O"}, MaxLength: 1},
		"bad formula":    {TargetNucleotides: []string{"U=C9H13Zz"}, MaxLength: 1},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := New(cfg, quietLogger()).Generate()
			require.Error(t, err)
			assert.Nil(t, res)
		})
	}
}

func TestAutoRestriction(t *testing.T) {
	assert.Equal(t, "AUAAAUUAUU", autoRestriction([]byte{'A', 'U'}, 2))
	assert.Equal(t, "A", autoRestriction([]byte{'A'}, 1))
	assert.Equal(t, "", autoRestriction(nil, 3))
}

func TestGenerateAutoRestrictionFromRuleSources(t *testing.T) {
	// With no explicit restriction, the rule sources seed every
	// combination up to the maximum length.
	res := generate(t, Config{
		TargetNucleotides: []string{ampDefinition, umpDefinition},
		NucleotideGroups:  []string{"ACGU"},
		CanCrossLink:      "U",
		Mappings:          []string{"A->A", "U->U"},
		MaxLength:         2,
	})

	// U, AU and UU all survive; A has no cross-linkable symbol.
	keys := res.Formulas()
	require.Len(t, keys, 3)
	assert.Contains(t, keys, "C9H13N2O9P")
	assert.Contains(t, keys, "C19H25N7O15P2")
	assert.Contains(t, keys, "C18H24N4O17P2")
}

func BenchmarkGenerate(b *testing.B) {
	cfg := Config{
		TargetNucleotides:   []string{ampDefinition, umpDefinition, "G=C10H14N5O8P", "C=C9H14N3O8P"},
		NucleotideGroups:    []string{"ACGU"},
		CanCrossLink:        "U",
		SequenceRestriction: "AUCGAUCG",
		MaxLength:           3,
	}
	gen := New(cfg, quietLogger())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
