package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Energy is a vehicle energy type.
type Energy string

const (
	EnergyGasoline Energy = "gasoline"
	EnergyDiesel   Energy = "diesel"
	EnergyElectric Energy = "electric"
	EnergyHybrid   Energy = "hybrid"
	EnergyHydrogen Energy = "hydrogen"
	EnergyOther    Energy = "other"
)

// Vehicle represents a user-owned vehicle.
type Vehicle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID      string             `json:"owner_id" bson:"owner_id"`
	Registration string             `json:"registration" bson:"registration"`
	Brand        string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Model        string             `json:"model,omitempty" bson:"model,omitempty"`
	Energy       Energy             `json:"energy" bson:"energy"`
	V7Emissions  *float64           `json:"v7_emissions,omitempty" bson:"v7_emissions,omitempty"` // g/km
	PhotoURL     string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// IsValidEnergy reports whether an energy value is one of the known types.
func IsValidEnergy(e Energy) bool {
	switch e {
	case EnergyGasoline, EnergyDiesel, EnergyElectric, EnergyHybrid, EnergyHydrogen, EnergyOther:
		return true
	default:
		return false
	}
}

// ParseEnergy maps free-text energy labels to a known Energy. Legacy clients
// sent French labels, so both spellings are accepted. Unrecognized input maps
// to EnergyOther rather than failing.
func ParseEnergy(s string) Energy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "essence", "gasoline", "petrol":
		return EnergyGasoline
	case "diesel":
		return EnergyDiesel
	case "électrique", "electrique", "electric":
		return EnergyElectric
	case "hybride", "hybrid":
		return EnergyHybrid
	case "hydrogène", "hydrogene", "hydrogen":
		return EnergyHydrogen
	default:
		return EnergyOther
	}
}

// SubMode returns the emission-factor sub_mode key for an energy type, or ""
// when no generic car factor exists for it.
func (e Energy) SubMode() string {
	switch e {
	case EnergyGasoline:
		return "petrol"
	case EnergyDiesel:
		return "diesel"
	case EnergyElectric:
		return "electric"
	case EnergyHybrid:
		return "hybrid"
	default:
		return ""
	}
}

// Snapshot copies the fields of a vehicle that trips keep after a join.
func (v *Vehicle) Snapshot() *TripVehicle {
	return &TripVehicle{
		ID:           v.ID.Hex(),
		OwnerID:      v.OwnerID,
		Registration: v.Registration,
		Brand:        v.Brand,
		Model:        v.Model,
		Energy:       string(v.Energy),
		V7Emissions:  v.V7Emissions,
	}
}
