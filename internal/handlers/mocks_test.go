package handlers

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/carbyo/trip-carbon/internal/carbon"
	"github.com/carbyo/trip-carbon/internal/middleware"
	"github.com/carbyo/trip-carbon/internal/models"
)

// MockUserCollection is a mock implementation of db.UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateUser(ctx context.Context, id string, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) SetOnboarded(ctx context.Context, id string, onboarded bool) error {
	args := m.Called(ctx, id, onboarded)
	return args.Error(0)
}

// MockTripCollection is a mock implementation of db.TripCollection
type MockTripCollection struct {
	mock.Mock
}

func (m *MockTripCollection) InsertTrip(ctx context.Context, trip models.Trip) (string, error) {
	args := m.Called(ctx, trip)
	return args.String(0), args.Error(1)
}

func (m *MockTripCollection) FindTripByID(ctx context.Context, id string) (*models.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripCollection) FetchTrips(ctx context.Context, userID, tripType string, window *carbon.Window) ([]models.Trip, error) {
	args := m.Called(ctx, userID, tripType, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripCollection) FindUserTrips(ctx context.Context, userID string, limit int64) ([]models.Trip, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripCollection) UpdateTrip(ctx context.Context, id string, trip models.Trip) error {
	args := m.Called(ctx, id, trip)
	return args.Error(0)
}

func (m *MockTripCollection) DeleteTrip(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (string, error) {
	args := m.Called(ctx, vehicle)
	return args.String(0), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehiclesByOwner(ctx context.Context, ownerID string) ([]models.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	args := m.Called(ctx, id, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFactorCollection is a mock implementation of db.FactorCollection
type MockFactorCollection struct {
	mock.Mock
}

func (m *MockFactorCollection) FindGenericCarFactor(ctx context.Context, subMode string) (*models.EmissionFactor, error) {
	args := m.Called(ctx, subMode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmissionFactor), args.Error(1)
}

// authedRequest attaches authenticated-user claims the way the middleware
// does, so handlers under test see a logged-in user.
func authedRequest(r *http.Request, userID string) *http.Request {
	claims := &models.Claims{UserID: userID, Email: userID + "@example.com"}
	ctx := context.WithValue(r.Context(), middleware.UserContextKey, claims)
	return r.WithContext(ctx)
}
