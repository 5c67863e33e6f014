package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"splitlog/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const documentCollectionName = "collections"

// storedDocument is the Mongo shape of one collection blob. State is kept as
// a JSON string so a save/load round trip is byte identical, which the backup
// format relies on.
type storedDocument struct {
	Name      string    `bson:"_id"`
	Version   int       `bson:"version"`
	State     string    `bson:"state"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoDocumentStore implements repository.DocumentStore.
type mongoDocumentStore struct {
	collection *mongo.Collection
}

// NewMongoDocumentStore creates a DocumentStore backed by MongoDB.
func NewMongoDocumentStore(db *mongo.Database) repository.DocumentStore {
	return &mongoDocumentStore{
		collection: db.Collection(documentCollectionName),
	}
}

// Load returns the document stored under name.
func (r *mongoDocumentStore) Load(ctx context.Context, name string) (*repository.Document, error) {
	var stored storedDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &repository.Document{
		Name:      stored.Name,
		Version:   stored.Version,
		State:     json.RawMessage(stored.State),
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

// Save upserts the document under name, replacing any previous state.
func (r *mongoDocumentStore) Save(ctx context.Context, name string, state json.RawMessage) error {
	stored := storedDocument{
		Name:      name,
		Version:   0,
		State:     string(state),
		UpdatedAt: time.Now().UTC(),
	}

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": name},
		stored,
		options.Replace().SetUpsert(true),
	)
	return err
}
