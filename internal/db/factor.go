package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carbyo/trip-carbon/internal/models"
)

// MongoFactorCollection implements FactorCollection for MongoDB.
type MongoFactorCollection struct {
	Collection *mongo.Collection
}

// FindGenericCarFactor returns the active generic car emission factor for a
// sub-mode ("petrol", "diesel", ...), or nil when none is configured.
func (c *MongoFactorCollection) FindGenericCarFactor(ctx context.Context, subMode string) (*models.EmissionFactor, error) {
	if subMode == "" {
		return nil, nil
	}
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}

	var factor models.EmissionFactor
	err := c.Collection.FindOne(ctx, bson.M{
		"mode":      "car",
		"sub_mode":  subMode,
		"is_active": true,
	}).Decode(&factor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &factor, nil
}
