package main

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/carbyo/trip-carbon/internal/auth"
	"github.com/carbyo/trip-carbon/internal/carbon"
	"github.com/carbyo/trip-carbon/internal/config"
	"github.com/carbyo/trip-carbon/internal/db"
	"github.com/carbyo/trip-carbon/internal/handlers"
	"github.com/carbyo/trip-carbon/internal/middleware"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	database := db.Database(client)
	log.WithField("database", database.Name()).Info("connected to MongoDB")

	trips := &db.MongoTripCollection{Collection: database.Collection("trips")}
	vehicles := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	factors := &db.MongoFactorCollection{Collection: database.Collection("emission_factors")}
	users := &db.MongoUserCollection{Collection: database.Collection("users")}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("failed to create auth service")
	}

	dashboard := carbon.NewDashboard(trips, carbon.DefaultScale())

	authHandler := handlers.NewAuthHandler(authService, users)
	tripHandler := handlers.NewTripHandler(trips, vehicles, factors)
	vehicleHandler := handlers.NewVehicleHandler(vehicles)
	dashboardHandler := handlers.NewDashboardHandler(dashboard)
	factorHandler := handlers.NewFactorHandler(factors)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()
	limitAuth := rateLimiter.RateLimit(20, time.Minute)

	mux := http.NewServeMux()
	mux.Handle("/api/auth/login", limitAuth(http.HandlerFunc(authHandler.Login)))
	mux.Handle("/api/auth/register", limitAuth(http.HandlerFunc(authHandler.Register)))
	mux.HandleFunc("/api/auth/me", authHandler.Me)
	mux.HandleFunc("/api/trips", tripHandler.HandleTrips)
	mux.HandleFunc("/api/trips/", tripHandler.HandleTrip)
	mux.HandleFunc("/api/vehicles", vehicleHandler.HandleVehicles)
	mux.HandleFunc("/api/vehicles/", vehicleHandler.HandleVehicle)
	mux.HandleFunc("/api/dashboard", dashboardHandler.GetDashboard)
	mux.HandleFunc("/api/emission-factors", factorHandler.GetGenericCarFactor)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	handler := authMiddleware.Authenticate(mux)

	log.WithField("port", cfg.Port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
