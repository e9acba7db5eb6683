// Package database owns the MongoDB client lifecycle and exposes the three
// collections the service works with.
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
)

// Collection names inside the configured database.
const (
	QueriesCollection         = "recs"
	UsersCollection           = "users"
	RecommendationsCollection = "recommend"
)

// Store is the document store adapter. It is safe for concurrent use.
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
}

// Opt configures a Store.
type Opt func(*Store)

// WithTransactions makes WithinTx run callbacks inside a multi-document
// transaction. Requires a replica set or sharded cluster.
func WithTransactions(enabled bool) Opt {
	return func(s *Store) {
		s.transactions = enabled
	}
}

// Connect dials the server at uri, verifies it with a ping and returns a
// Store bound to database dbName.
func Connect(ctx context.Context, uri, dbName string, opts ...Opt) (*Store, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	s := New(client, dbName, opts...)
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Log.Infow("connected to MongoDB", "database", dbName, "transactions", s.transactions)
	return s, nil
}

// New wraps an already connected client.
func New(client *mongo.Client, dbName string, opts ...Opt) *Store {
	s := &Store{
		client: client,
		db:     client.Database(dbName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Queries returns the collection holding Query documents.
func (s *Store) Queries() *mongo.Collection {
	return s.db.Collection(QueriesCollection)
}

// Users returns the collection holding User documents.
func (s *Store) Users() *mongo.Collection {
	return s.db.Collection(UsersCollection)
}

// Recommendations returns the collection holding Recommendation documents.
func (s *Store) Recommendations() *mongo.Collection {
	return s.db.Collection(RecommendationsCollection)
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
