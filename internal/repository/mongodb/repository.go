package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kouassidev/ferme/internal/domain/models"
)

// Repository defines the interface for snapshot archival.
type Repository interface {
	SaveSnapshot(ctx context.Context, snapshot models.FarmSnapshot) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "farm_snapshots",
	}, nil
}

// SaveSnapshot archives one daily farm snapshot.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.FarmSnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	_, err := collection.InsertOne(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("failed to insert farm snapshot: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
