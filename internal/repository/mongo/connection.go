package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	queriesCollection         = "queries"
	recommendationsCollection = "recommendations"
)

// Connection owns the single client shared by every repository.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewConnection(ctx context.Context, uri, database string) (*Connection, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).SetStrict(true))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	conn := &Connection{
		client: client,
		db:     client.Database(database),
	}

	if err := conn.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	if err := conn.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to initialize indexes: %w", err)
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongo client is nil")
	}
	return c.client.Ping(ctx, nil)
}

func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// EnsureIndexes creates the lookup indexes used by owner and recommendation listings.
// Creating an index that already exists is a no-op on the server.
func (c *Connection) EnsureIndexes(ctx context.Context) error {
	_, err := c.Collection(queriesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("queries: %w", err)
	}

	_, err = c.Collection(recommendationsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "queryId", Value: 1}}},
		{Keys: bson.D{{Key: "recommenderEmail", Value: 1}}},
		{Keys: bson.D{{Key: "userEmail", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("recommendations: %w", err)
	}

	return nil
}
