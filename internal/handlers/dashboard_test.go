package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carbyo/trip-carbon/internal/carbon"
	"github.com/carbyo/trip-carbon/internal/models"
)

// stubRepo serves canned trips for any fetch.
type stubRepo struct {
	trips []models.Trip
	err   error
}

func (s *stubRepo) FetchTrips(ctx context.Context, userID, tripType string, window *carbon.Window) ([]models.Trip, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Trip
	for _, trip := range s.trips {
		if trip.Type != tripType {
			continue
		}
		if window != nil && !window.Contains(trip.TripDate) {
			continue
		}
		out = append(out, trip)
	}
	return out, nil
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("returns tiles for both trip types", func(t *testing.T) {
		repo := &stubRepo{trips: []models.Trip{
			{ID: primitive.NewObjectID(), UserID: "user-1", Type: models.TripPersonal, TripDate: "2026-08-10",
				DistanceKm: floatPtr(15), CO2EmissionsKg: floatPtr(1.7)},
			{ID: primitive.NewObjectID(), UserID: "user-1", Type: models.TripProfessional, TripDate: "2026-07-20",
				DistanceKm: floatPtr(40), CO2EmissionsKg: floatPtr(5.2)},
		}}
		dashboard := carbon.NewDashboard(repo, carbon.DefaultScale())
		handler := NewDashboardHandler(dashboard)

		req := authedRequest(httptest.NewRequest("GET", "/api/dashboard?month=2026-08", nil), "user-1")
		w := httptest.NewRecorder()

		handler.GetDashboard(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items []carbon.KPIItem `json:"items"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.Len(t, response.Items, 4)

		perso := response.Items[0]
		assert.Equal(t, models.TripPersonal, perso.TripType)
		assert.Equal(t, carbon.PeriodMonth, perso.Period)
		assert.Equal(t, 1, perso.Current.Count)
		assert.InDelta(t, 15.0, perso.Current.TotalDistanceKm, 1e-9)
		if assert.NotNil(t, perso.Intensity) {
			// 1.7 kg over 15 km
			assert.InDelta(t, 113.33, *perso.Intensity, 0.01)
		}

		// The pro trip is in July, so the August month tile is empty but the
		// all-time tile still counts it.
		proMonth := response.Items[2]
		assert.Equal(t, carbon.PeriodTotal, response.Items[3].Period)
		assert.Equal(t, 0, proMonth.Current.Count)
		assert.Equal(t, 1, response.Items[3].Current.Count)
	})

	t.Run("invalid month", func(t *testing.T) {
		handler := NewDashboardHandler(carbon.NewDashboard(&stubRepo{}, carbon.DefaultScale()))

		req := authedRequest(httptest.NewRequest("GET", "/api/dashboard?month=august", nil), "user-1")
		w := httptest.NewRecorder()

		handler.GetDashboard(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("fetch failures degrade to unavailable tiles", func(t *testing.T) {
		handler := NewDashboardHandler(carbon.NewDashboard(&stubRepo{err: assert.AnError}, carbon.DefaultScale()))

		req := authedRequest(httptest.NewRequest("GET", "/api/dashboard?month=2026-08", nil), "user-1")
		w := httptest.NewRecorder()

		handler.GetDashboard(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items []carbon.KPIItem `json:"items"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.Len(t, response.Items, 4)
		for _, item := range response.Items {
			assert.True(t, item.Unavailable)
		}
	})

	t.Run("no auth context", func(t *testing.T) {
		handler := NewDashboardHandler(carbon.NewDashboard(&stubRepo{}, carbon.DefaultScale()))

		req := httptest.NewRequest("GET", "/api/dashboard", nil)
		w := httptest.NewRecorder()

		handler.GetDashboard(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
