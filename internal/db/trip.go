package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carbyo/trip-carbon/internal/carbon"
	"github.com/carbyo/trip-carbon/internal/models"
)

// MongoTripCollection implements TripCollection for MongoDB. It also
// satisfies carbon.TripRepository, so the dashboard assembler reads straight
// through it.
type MongoTripCollection struct {
	Collection *mongo.Collection
}

// InsertTrip inserts a trip record and returns its id.
func (c *MongoTripCollection) InsertTrip(ctx context.Context, trip models.Trip) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()
	result, err := c.Collection.InsertOne(ctx, trip)
	if err != nil {
		return "", err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// FindTripByID finds a trip by its ID.
func (c *MongoTripCollection) FindTripByID(ctx context.Context, id string) (*models.Trip, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid trip ID: %w", err)
	}
	var trip models.Trip
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("trip not found")
		}
		return nil, err
	}
	return &trip, nil
}

// FetchTrips returns the trips for one user and trip type, optionally
// restricted to a calendar-date window (end bound inclusive, open when the
// window's end is empty). Results come back trip_date descending with a
// created_at fallback for undated trips.
func (c *MongoTripCollection) FetchTrips(ctx context.Context, userID, tripType string, window *carbon.Window) ([]models.Trip, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}

	filter := bson.M{
		"user_id":     userID,
		"type_trajet": tripType,
	}
	if window != nil {
		dates := bson.M{"$gte": window.Start}
		if window.End != "" {
			dates["$lte"] = window.End
		}
		filter["trip_date"] = dates
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "trip_date", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	// Mongo ranks missing trip_date before present ones on a descending
	// sort; re-sort so undated trips land last.
	carbon.SortTrips(trips)
	return trips, nil
}

// FindUserTrips returns a user's most recent trips across all trip types.
func (c *MongoTripCollection) FindUserTrips(ctx context.Context, userID string, limit int64) ([]models.Trip, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "trip_date", Value: -1},
		{Key: "created_at", Value: -1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := c.Collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	carbon.SortTrips(trips)
	return trips, nil
}

// UpdateTrip updates a trip by its ID.
func (c *MongoTripCollection) UpdateTrip(ctx context.Context, id string, trip models.Trip) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid trip ID: %w", err)
	}
	trip.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": trip})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip not found")
	}
	return nil
}

// DeleteTrip deletes a trip by its ID.
func (c *MongoTripCollection) DeleteTrip(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid trip ID: %w", err)
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trip not found")
	}
	return nil
}
