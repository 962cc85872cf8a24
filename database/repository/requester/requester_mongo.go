package requesterRepo

import (
	"context"
	"fmt"
	"time"

	"farmconnect/database"
	"farmconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequesterRepo implements RequesterRepository using MongoDB.
type MongoRequesterRepo struct {
	coll *mongo.Collection
}

// NewMongoRequesterRepo creates a new instance of RequesterRepository using MongoDB.
func NewMongoRequesterRepo() RequesterRepository {
	coll := database.MongoClient.Database("farmconnect").Collection("requesters")
	repo := &MongoRequesterRepo{coll: coll}

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
// The unique phone index is what makes create-if-absent safe under
// concurrent first-contact messages from the same number.
func (r *MongoRequesterRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByPhone retrieves a requester by phone number.
func (r *MongoRequesterRepo) GetByPhone(phone string) (*models.Requester, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var requester models.Requester
	if err := r.coll.FindOne(ctx, bson.M{"phone_number": phone}).Decode(&requester); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch requester with phone %s: %w", phone, err)
	}
	return &requester, nil
}

// Create inserts a new requester document. Implemented as an upsert with
// $setOnInsert so a lost race on the unique phone index resolves to the
// winning document instead of a duplicate-key error.
func (r *MongoRequesterRepo) Create(requester *models.Requester) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	requester.CreatedAt = time.Now()

	filter := bson.M{"phone_number": requester.PhoneNumber}
	update := bson.M{"$setOnInsert": requester}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(requester); err != nil {
		return fmt.Errorf("failed to create requester with phone %s: %w", requester.PhoneNumber, err)
	}
	return nil
}
