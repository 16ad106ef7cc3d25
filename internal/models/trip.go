package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip type tags as stored in the trips collection. The values match the
// historical type_trajet column written by the mobile clients.
const (
	TripPersonal     = "perso"
	TripProfessional = "pro"
	TripCommute      = "domicile_travail"
)

// Transport modes recognized by the clients. Anything else is carried
// through untouched and treated as "other" for display.
const (
	ModeCar        = "car"
	ModeTrain      = "train"
	ModeBike       = "bike"
	ModePlane      = "plane"
	ModeBus        = "bus"
	ModeSubway     = "subway"
	ModeMotorcycle = "motorcycle"
)

// Trip represents a single recorded journey owned by one user.
//
// TripDate is a calendar date formatted "2006-01-02" (the backend column is
// date-only); CreatedAt is only a tie-break when TripDate is absent.
// DistanceKm and CO2EmissionsKg are nil until a calculation has completed,
// which is not the same thing as zero.
type Trip struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID             string             `json:"user_id" bson:"user_id"`
	VehicleID          string             `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	TripDate           string             `json:"trip_date,omitempty" bson:"trip_date,omitempty"`
	OriginAddress      string             `json:"origin_address,omitempty" bson:"origin_address,omitempty"`
	DestinationAddress string             `json:"destination_address,omitempty" bson:"destination_address,omitempty"`
	DistanceKm         *float64           `json:"distance_km" bson:"distance_km,omitempty"`
	CO2EmissionsKg     *float64           `json:"co2_emissions_kg" bson:"co2_emissions_kg,omitempty"`
	TransportMode      string             `json:"transport_mode,omitempty" bson:"transport_mode,omitempty"`
	Type               string             `json:"type_trajet" bson:"type_trajet"`
	Vehicle            *TripVehicle       `json:"vehicle,omitempty" bson:"vehicle,omitempty"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// TripVehicle is the vehicle snapshot joined onto a trip at read time.
// It is a copy, not a live reference: deleting the vehicle later does not
// rewrite past trips.
type TripVehicle struct {
	ID           string   `json:"id" bson:"id"`
	OwnerID      string   `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	Registration string   `json:"registration,omitempty" bson:"registration,omitempty"`
	Brand        string   `json:"brand,omitempty" bson:"brand,omitempty"`
	Model        string   `json:"model,omitempty" bson:"model,omitempty"`
	Energy       string   `json:"energy,omitempty" bson:"energy,omitempty"`
	V7Emissions  *float64 `json:"v7_emissions,omitempty" bson:"v7_emissions,omitempty"` // g/km
}

// IsValidTripType reports whether a trip type tag is one the system knows.
func IsValidTripType(t string) bool {
	switch t {
	case TripPersonal, TripProfessional, TripCommute:
		return true
	default:
		return false
	}
}
