package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/carbyo/trip-carbon/internal/db"
	"github.com/carbyo/trip-carbon/internal/models"
)

// FactorHandler serves emission-factor lookups.
type FactorHandler struct {
	factors db.FactorCollection
}

// NewFactorHandler creates a new emission-factor handler
func NewFactorHandler(factors db.FactorCollection) *FactorHandler {
	return &FactorHandler{factors: factors}
}

// GetGenericCarFactor returns the generic car factor for ?energy=..., or 404
// when the energy type has no generic factor (hydrogen, other).
func (h *FactorHandler) GetGenericCarFactor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	energy := models.ParseEnergy(r.URL.Query().Get("energy"))
	subMode := energy.SubMode()
	if subMode == "" {
		http.Error(w, "No generic factor for this energy type", http.StatusNotFound)
		return
	}

	factor, err := h.factors.FindGenericCarFactor(r.Context(), subMode)
	if err != nil {
		log.WithError(err).Error("emission factor lookup failed")
		http.Error(w, "Failed to fetch emission factor", http.StatusInternalServerError)
		return
	}
	if factor == nil {
		http.Error(w, "Emission factor not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, factor)
}
