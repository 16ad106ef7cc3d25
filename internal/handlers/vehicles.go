package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/carbyo/trip-carbon/internal/db"
	"github.com/carbyo/trip-carbon/internal/middleware"
	"github.com/carbyo/trip-carbon/internal/models"
)

// VehicleHandler handles vehicle CRUD requests, scoped to the owner.
type VehicleHandler struct {
	vehicles db.VehicleCollection
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicles db.VehicleCollection) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// HandleVehicles serves the collection endpoint: GET lists, POST creates.
func (h *VehicleHandler) HandleVehicles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleVehicle serves the item endpoint /api/vehicles/{id}.
func (h *VehicleHandler) HandleVehicle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/vehicles/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
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

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	vehicles, err := h.vehicles.FindVehiclesByOwner(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to list vehicles")
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) create(w http.ResponseWriter, r *http.Request) {
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

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if vehicle.Registration == "" {
		http.Error(w, "Registration is required", http.StatusBadRequest)
		return
	}
	// Legacy clients send free-text energy labels.
	if !models.IsValidEnergy(vehicle.Energy) {
		vehicle.Energy = models.ParseEnergy(string(vehicle.Energy))
	}

	vehicle.OwnerID = claims.UserID
	id, err := h.vehicles.InsertVehicle(r.Context(), vehicle)
	if err != nil {
		log.WithError(err).Error("failed to insert vehicle")
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *VehicleHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	vehicle, ok := h.ownedVehicle(w, r, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	existing, ok := h.ownedVehicle(w, r, id)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidEnergy(vehicle.Energy) {
		vehicle.Energy = models.ParseEnergy(string(vehicle.Energy))
	}

	vehicle.ID = existing.ID
	vehicle.OwnerID = existing.OwnerID
	vehicle.CreatedAt = existing.CreatedAt

	if err := h.vehicles.UpdateVehicle(r.Context(), id, vehicle); err != nil {
		log.WithError(err).Error("failed to update vehicle")
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle updated"})
}

func (h *VehicleHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if _, ok := h.ownedVehicle(w, r, id); !ok {
		return
	}

	if err := h.vehicles.DeleteVehicle(r.Context(), id); err != nil {
		log.WithError(err).Error("failed to delete vehicle")
		http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
}

func (h *VehicleHandler) ownedVehicle(w http.ResponseWriter, r *http.Request, id string) (*models.Vehicle, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return nil, false
	}

	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return nil, false
	}
	if vehicle.OwnerID != claims.UserID {
		http.Error(w, "Access denied", http.StatusForbidden)
		return nil, false
	}
	return vehicle, true
}
