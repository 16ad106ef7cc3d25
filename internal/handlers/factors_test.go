package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carbyo/trip-carbon/internal/db"
	"github.com/carbyo/trip-carbon/internal/models"
)

func TestFactorHandler_GetGenericCarFactor(t *testing.T) {
	t.Run("known energy type", func(t *testing.T) {
		mockFactors := new(MockFactorCollection)
		handler := NewFactorHandler(db.FactorCollection(mockFactors))

		factor := &models.EmissionFactor{
			Name:       "Voiture essence",
			Mode:       models.ModeCar,
			SubMode:    "petrol",
			GramsPerKm: floatPtr(193),
			IsActive:   true,
		}
		mockFactors.On("FindGenericCarFactor", mock.Anything, "petrol").Return(factor, nil)

		req := httptest.NewRequest("GET", "/api/emission-factors?energy=essence", nil)
		w := httptest.NewRecorder()

		handler.GetGenericCarFactor(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.EmissionFactor
		err := json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.Equal(t, "petrol", response.SubMode)
		mockFactors.AssertExpectations(t)
	})

	t.Run("energy without a generic factor", func(t *testing.T) {
		handler := NewFactorHandler(db.FactorCollection(new(MockFactorCollection)))

		req := httptest.NewRequest("GET", "/api/emission-factors?energy=hydrogen", nil)
		w := httptest.NewRecorder()

		handler.GetGenericCarFactor(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("factor missing from the collection", func(t *testing.T) {
		mockFactors := new(MockFactorCollection)
		handler := NewFactorHandler(db.FactorCollection(mockFactors))

		mockFactors.On("FindGenericCarFactor", mock.Anything, "electric").Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/emission-factors?energy=electric", nil)
		w := httptest.NewRecorder()

		handler.GetGenericCarFactor(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockFactors.AssertExpectations(t)
	})
}
