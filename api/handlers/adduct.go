// Package handlers provides HTTP handlers for the xladduct API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lennykovac/xladduct/pkg/xladduct"
)

// GenerateRequest represents an adduct generation request.
type GenerateRequest struct {
	TargetNucleotides   []string `json:"target_nucleotides"`
	NucleotideGroups    []string `json:"nucleotide_groups"`
	CanCrossLink        string   `json:"can_cross_link"`
	Mappings            []string `json:"mappings"`
	Modifications       []string `json:"modifications"`
	SequenceRestriction string   `json:"sequence_restriction"`
	CysteineAdduct      bool     `json:"cysteine_adduct"`
	MaxLength           int      `json:"max_length"`
}

// AdductEntry represents one generated adduct.
type AdductEntry struct {
	Formula     string   `json:"formula"`
	MonoMass    float64  `json:"mono_mass"`
	Nucleotides []string `json:"nucleotides"`
}

// GenerateResponse represents the response for adduct generation.
type GenerateResponse struct {
	Adducts []AdductEntry `json:"adducts"`
	Summary []string      `json:"summary"`
}

// GenerateHandler handles adduct generation requests.
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.MaxLength < 1 {
		http.Error(w, `{"error": "max_length must be at least 1"}`, http.StatusBadRequest)
		return
	}
	if len(req.TargetNucleotides) == 0 && !req.CysteineAdduct {
		http.Error(w, `{"error": "target_nucleotides must not be empty"}`, http.StatusBadRequest)
		return
	}

	res, err := xladduct.Generate(xladduct.Config{
		TargetNucleotides:   req.TargetNucleotides,
		NucleotideGroups:    req.NucleotideGroups,
		CanCrossLink:        req.CanCrossLink,
		Mappings:            req.Mappings,
		Modifications:       req.Modifications,
		SequenceRestriction: req.SequenceRestriction,
		CysteineAdduct:      req.CysteineAdduct,
		MaxLength:           req.MaxLength,
	})
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	adducts := make([]AdductEntry, 0, len(res.FormulaToMass))
	for _, f := range res.Formulas() {
		adducts = append(adducts, AdductEntry{
			Formula:     f,
			MonoMass:    res.FormulaToMass[f],
			Nucleotides: res.Ambiguities[f].Sorted(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GenerateResponse{
		Adducts: adducts,
		Summary: res.Summary(),
	})
}
