package labourRepo

import (
	"context"
	"fmt"
	"time"

	"farmconnect/database"
	"farmconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoLabourRepo implements LabourRepository using MongoDB.
type MongoLabourRepo struct {
	coll *mongo.Collection
}

// NewMongoLabourRepo creates a new instance of LabourRepository using MongoDB.
func NewMongoLabourRepo() LabourRepository {
	coll := database.MongoClient.Database("farmconnect").Collection("labour")
	repo := &MongoLabourRepo{coll: coll}

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
func (r *MongoLabourRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "skills", Value: 1}}},
		{Keys: bson.D{{Key: "is_available", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindAvailableBySkill retrieves one available labour entry offering the
// skill. Matching a scalar against the skills array is a membership test
// in Mongo, so multi-skill crews match on any one of their skills.
func (r *MongoLabourRepo) FindAvailableBySkill(skill string) (*models.Labour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"skills":       skill,
		"is_available": true,
	}

	var labour models.Labour
	if err := r.coll.FindOne(ctx, filter).Decode(&labour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch labour with skill %s: %w", skill, err)
	}
	return &labour, nil
}
