package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/carbyo/trip-carbon/internal/carbon"
	"github.com/carbyo/trip-carbon/internal/db"
	"github.com/carbyo/trip-carbon/internal/middleware"
	"github.com/carbyo/trip-carbon/internal/models"
)

// TripHandler handles trip CRUD requests, always scoped to the
// authenticated user.
type TripHandler struct {
	trips    db.TripCollection
	vehicles db.VehicleCollection
	factors  db.FactorCollection
}

// NewTripHandler creates a new trip handler
func NewTripHandler(trips db.TripCollection, vehicles db.VehicleCollection, factors db.FactorCollection) *TripHandler {
	return &TripHandler{trips: trips, vehicles: vehicles, factors: factors}
}

// HandleTrips serves the collection endpoint: GET lists, POST creates.
func (h *TripHandler) HandleTrips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleTrip serves the item endpoint /api/trips/{id}.
func (h *TripHandler) HandleTrip(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/trips/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TripHandler) list(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	tripType := r.URL.Query().Get("type")
	if tripType != "" && !models.IsValidTripType(tripType) {
		http.Error(w, "Invalid trip type", http.StatusBadRequest)
		return
	}

	var trips []models.Trip
	var err error
	if tripType == "" {
		limit := int64(50)
		if l := r.URL.Query().Get("limit"); l != "" {
			if parsed, perr := strconv.ParseInt(l, 10, 64); perr == nil && parsed > 0 {
				limit = parsed
			}
		}
		trips, err = h.trips.FindUserTrips(r.Context(), claims.UserID, limit)
	} else {
		var window *carbon.Window
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from != "" {
			window = &carbon.Window{Start: from, End: to}
		}
		trips, err = h.trips.FetchTrips(r.Context(), claims.UserID, tripType, window)
	}
	if err != nil {
		log.WithError(err).Error("failed to list trips")
		http.Error(w, "Failed to fetch trips", http.StatusInternalServerError)
		return
	}

	if trips == nil {
		trips = []models.Trip{}
	}
	writeJSON(w, http.StatusOK, trips)
}

func (h *TripHandler) create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var trip models.Trip
	if err := json.Unmarshal(body, &trip); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if !models.IsValidTripType(trip.Type) {
		http.Error(w, "Invalid trip type", http.StatusBadRequest)
		return
	}
	if trip.TripDate != "" {
		if _, err := time.Parse(time.DateOnly, trip.TripDate); err != nil {
			http.Error(w, "Invalid trip date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	trip.UserID = claims.UserID
	h.resolveVehicle(r, &trip)

	id, err := h.trips.InsertTrip(r.Context(), trip)
	if err != nil {
		log.WithError(err).Error("failed to insert trip")
		http.Error(w, "Failed to create trip", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// resolveVehicle joins the vehicle snapshot onto the trip and, when the
// client sent a distance but no emissions, estimates them from the vehicle's
// reference factor or the generic factor for its energy type. Estimation is
// best-effort: a lookup failure leaves the trip without emissions.
func (h *TripHandler) resolveVehicle(r *http.Request, trip *models.Trip) {
	if trip.VehicleID == "" {
		return
	}

	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), trip.VehicleID)
	if err != nil {
		log.WithError(err).WithField("vehicle_id", trip.VehicleID).Warn("vehicle lookup failed")
		return
	}
	claims, _ := middleware.UserFromContext(r.Context())
	if claims == nil || vehicle.OwnerID != claims.UserID {
		return
	}
	trip.Vehicle = vehicle.Snapshot()

	if trip.CO2EmissionsKg != nil || trip.DistanceKm == nil {
		return
	}

	var genericKgPerKm *float64
	if vehicle.V7Emissions == nil {
		factor, err := h.factors.FindGenericCarFactor(r.Context(), vehicle.Energy.SubMode())
		if err != nil {
			log.WithError(err).Warn("emission factor lookup failed")
		} else if factor != nil {
			genericKgPerKm = factor.KgPerKm()
		}
	}
	trip.CO2EmissionsKg = carbon.EstimateEmissions(*trip.DistanceKm, vehicle.V7Emissions, genericKgPerKm)
}

func (h *TripHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	trip, ok := h.ownedTrip(w, r, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *TripHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	existing, ok := h.ownedTrip(w, r, id)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var trip models.Trip
	if err := json.Unmarshal(body, &trip); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidTripType(trip.Type) {
		http.Error(w, "Invalid trip type", http.StatusBadRequest)
		return
	}

	// Ownership and identity are never taken from the payload.
	trip.ID = existing.ID
	trip.UserID = existing.UserID
	trip.CreatedAt = existing.CreatedAt
	h.resolveVehicle(r, &trip)

	if err := h.trips.UpdateTrip(r.Context(), id, trip); err != nil {
		log.WithError(err).Error("failed to update trip")
		http.Error(w, "Failed to update trip", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Trip updated"})
}

func (h *TripHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if _, ok := h.ownedTrip(w, r, id); !ok {
		return
	}

	if err := h.trips.DeleteTrip(r.Context(), id); err != nil {
		log.WithError(err).Error("failed to delete trip")
		http.Error(w, "Failed to delete trip", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Trip deleted"})
}

// ownedTrip loads a trip and enforces that it belongs to the caller,
// writing the error response itself when it does not.
func (h *TripHandler) ownedTrip(w http.ResponseWriter, r *http.Request, id string) (*models.Trip, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return nil, false
	}

	trip, err := h.trips.FindTripByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return nil, false
	}
	if trip.UserID != claims.UserID {
		http.Error(w, "Access denied", http.StatusForbidden)
		return nil, false
	}
	return trip, true
}
