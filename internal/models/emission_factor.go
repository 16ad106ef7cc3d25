package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmissionFactor is a reference CO₂ factor for a transport mode/sub-mode
// combination, e.g. the generic factor for a petrol car.
type EmissionFactor struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Mode             string             `json:"mode" bson:"mode"`         // "car", "train", ...
	SubMode          string             `json:"sub_mode" bson:"sub_mode"` // "petrol", "diesel", ...
	GramsPerKm       *float64           `json:"grams_per_km,omitempty" bson:"grams_per_km,omitempty"`
	KgCO2ePerKm      *float64           `json:"factor_kgco2e_per_km,omitempty" bson:"factor_kgco2e_per_km,omitempty"`
	IsActive         bool               `json:"is_active" bson:"is_active"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}

// KgPerKm resolves the factor in kg CO₂e per km, preferring the explicit
// kg column and falling back to the g/km one. Returns nil when neither is set.
func (f *EmissionFactor) KgPerKm() *float64 {
	if f.KgCO2ePerKm != nil {
		return f.KgCO2ePerKm
	}
	if f.GramsPerKm != nil {
		kg := *f.GramsPerKm / 1000.0
		return &kg
	}
	return nil
}
