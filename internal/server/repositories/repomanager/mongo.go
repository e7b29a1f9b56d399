package repomanager

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/filevault/internal/server/repositories/files"
	"github.com/dmitrijs2005/filevault/internal/server/repositories/users"
)

// MongoRepositoryManager connects to the document store and exposes the
// users and files collections as repositories.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  users.Repository
	files  files.Repository
}

func NewMongoRepositoryManager(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db := client.Database(database)

	m := &MongoRepositoryManager{
		client: client,
		users:  users.NewMongoRepository(db),
		files:  files.NewMongoRepository(db),
	}

	if err := m.ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("index error: %w", err)
	}

	return m, nil
}

// ensureIndexes creates the unique email index backing the "Already exist"
// registration contract.
func (m *MongoRepositoryManager) ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Files() files.Repository {
	return m.files
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
