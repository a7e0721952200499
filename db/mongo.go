// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/quickly-review/models"
)

// ReviewCollection is the MongoDB collection holding review documents
const ReviewCollection = "reviews"

// server error code for CreateCollection on an existing collection
const codeNamespaceExists = 48

const disconnectTimeout = 5 * time.Second

// reviewDocument is the stored shape; documents written by older clients may
// carry extra fields (e.g. __v), which are ignored on decode
type reviewDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Rating    int                `bson:"rating"`
	Review    string             `bson:"review"`
	ImageURL  string             `bson:"imageUrl"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d reviewDocument) toModel() models.Review {
	return models.Review{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Rating:    d.Rating,
		Review:    d.Review,
		ImageURL:  d.ImageURL,
		CreatedAt: d.CreatedAt,
	}
}

// MongoStore keeps reviews in a MongoDB collection
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoStore(client *mongo.Client, coll *mongo.Collection) *MongoStore {
	return &MongoStore{client: client, coll: coll}
}

// OpenMongo connects, pings and makes sure the review collection exists
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	mdb := client.Database(database)
	if err := EnsureCollection(ctx, mdb); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return NewMongoStore(client, mdb.Collection(ReviewCollection)), nil
}

// EnsureCollection creates the review collection with a validator that
// mirrors the SQL CHECK constraints. An existing collection is left alone.
func EnsureCollection(ctx context.Context, mdb *mongo.Database) error {
	opts := options.CreateCollection().SetValidator(reviewValidator)
	err := mdb.CreateCollection(ctx, ReviewCollection, opts)
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return nil
	}

	return fmt.Errorf("failed to create review collection: %w", err)
}

var reviewValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"name", "rating", "review"},
		"properties": bson.M{
			"name":     bson.M{"bsonType": "string", "minLength": 1},
			"rating":   bson.M{"bsonType": bson.A{"int", "long", "double"}, "minimum": models.MinRating, "maximum": models.MaxRating},
			"review":   bson.M{"bsonType": "string", "minLength": 1},
			"imageUrl": bson.M{"bsonType": "string"},
		},
	},
}

func (s *MongoStore) Insert(ctx context.Context, draft models.ReviewDraft) (models.Review, error) {
	// BSON dates keep milliseconds
	doc := reviewDocument{
		ID:        primitive.NewObjectID(),
		Name:      draft.Name,
		Rating:    draft.Rating,
		Review:    draft.Review,
		ImageURL:  draft.ImageURL,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return models.Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	return doc.toModel(), nil
}

func (s *MongoStore) FindAll(ctx context.Context) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	var docs []reviewDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	reviews := make([]models.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, d.toModel())
	}

	return reviews, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}
