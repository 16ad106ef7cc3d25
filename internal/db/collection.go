package db

import (
	"context"

	"github.com/carbyo/trip-carbon/internal/carbon"
	"github.com/carbyo/trip-carbon/internal/models"
)

// TripCollection defines the interface for trip data operations.
type TripCollection interface {
	InsertTrip(ctx context.Context, trip models.Trip) (string, error)
	FindTripByID(ctx context.Context, id string) (*models.Trip, error)
	FetchTrips(ctx context.Context, userID, tripType string, window *carbon.Window) ([]models.Trip, error)
	FindUserTrips(ctx context.Context, userID string, limit int64) ([]models.Trip, error)
	UpdateTrip(ctx context.Context, id string, trip models.Trip) error
	DeleteTrip(ctx context.Context, id string) error
}

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (string, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	FindVehiclesByOwner(ctx context.Context, ownerID string) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
}

// FactorCollection defines the interface for emission-factor lookups.
type FactorCollection interface {
	FindGenericCarFactor(ctx context.Context, subMode string) (*models.EmissionFactor, error)
}

// UserCollection defines the interface for user database operations.
type UserCollection interface {
	InsertUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, user models.User) error
	DeleteUser(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string) error
	SetOnboarded(ctx context.Context, id string, onboarded bool) error
}
