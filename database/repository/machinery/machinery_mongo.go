package machineryRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"farmconnect/database"
	"farmconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMachineryRepo implements MachineryRepository using MongoDB.
type MongoMachineryRepo struct {
	coll *mongo.Collection
}

// NewMongoMachineryRepo creates a new instance of MachineryRepository using MongoDB.
func NewMongoMachineryRepo() MachineryRepository {
	coll := database.MongoClient.Database("farmconnect").Collection("machinery")
	repo := &MongoMachineryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoMachineryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "is_available", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindAvailableByName retrieves one available machinery matching the name.
// The anchored, quoted regex gives a case-insensitive whole-string match,
// never a substring match.
func (r *MongoMachineryRepo) FindAvailableByName(name string) (*models.Machinery, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"name": bson.M{
			"$regex":   fmt.Sprintf("^%s$", regexp.QuoteMeta(name)),
			"$options": "i",
		},
		"is_available": true,
	}

	var machinery models.Machinery
	opts := options.FindOne()
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&machinery); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch machinery with name %s: %w", name, err)
	}
	return &machinery, nil
}
