package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lennykovac/xladduct/pkg/xladduct"
)

// FormulaRequest represents a request with an empirical formula.
type FormulaRequest struct {
	Formula string `json:"formula"`
}

// ParseFormulaResponse represents the response for formula parsing.
type ParseFormulaResponse struct {
	Canonical string  `json:"canonical"`
	MonoMass  float64 `json:"mono_mass"`
	Charge    int     `json:"charge"`
}

// ParseFormulaHandler handles formula parsing requests.
func ParseFormulaHandler(w http.ResponseWriter, r *http.Request) {
	var req FormulaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	f, err := xladduct.ParseFormula(req.Formula)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ParseFormulaResponse{
		Canonical: f.String(),
		MonoMass:  f.MonoMass(),
		Charge:    f.Charge(),
	})
}

// FormulaMassResponse represents the response for a mass calculation.
type FormulaMassResponse struct {
	MonoMass float64 `json:"mono_mass"`
}

// FormulaMassHandler handles monoisotopic mass requests.
func FormulaMassHandler(w http.ResponseWriter, r *http.Request) {
	var req FormulaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	m, err := xladduct.MonoisotopicMass(req.Formula)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FormulaMassResponse{MonoMass: m})
}
