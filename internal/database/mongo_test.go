package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func setupMongoContainer(t *testing.T) (string, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "27017")

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	return uri, func() { container.Terminate(context.Background()) }
}

// setupReplicaSetContainer starts a single-node replica set so multi-document
// transactions are available.
func setupReplicaSetContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		Cmd:          []string{"--replSet", "rs0", "--bind_ip_all"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	code, _, err := container.Exec(ctx, []string{
		"mongosh", "--quiet", "--eval",
		"rs.initiate({_id: 'rs0', members: [{_id: 0, host: 'localhost:27017'}]})",
	})
	require.NoError(t, err)
	require.Equal(t, 0, code)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "27017")
	uri := fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port())

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	require.Eventually(t, func() bool {
		var hello struct {
			IsWritablePrimary bool `bson:"isWritablePrimary"`
		}
		err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
		return err == nil && hello.IsWritablePrimary
	}, 60*time.Second, 500*time.Millisecond)

	return uri, func() { container.Terminate(ctx) }
}

func TestStore_ConnectAndCollections(t *testing.T) {
	uri, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	store, err := Connect(ctx, uri, "testdb")
	require.NoError(t, err)
	defer store.Close(ctx)

	assert.NoError(t, store.Ping(ctx))
	assert.False(t, store.Transactional())
	assert.Equal(t, "recs", store.Queries().Name())
	assert.Equal(t, "users", store.Users().Name())
	assert.Equal(t, "recommend", store.Recommendations().Name())

	t.Run("WithinTx without transactions runs fn directly", func(t *testing.T) {
		err := store.WithinTx(ctx, func(ctx context.Context) error {
			_, err := store.Users().InsertOne(ctx, bson.M{"email": "tx@example.com"})
			return err
		})
		assert.NoError(t, err)

		n, err := store.Users().CountDocuments(ctx, bson.M{"email": "tx@example.com"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("WithinTx propagates fn error", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithinTx(ctx, func(ctx context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
	})
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	store, err := Connect(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100", "testdb")
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStore_WithinTx_ReplicaSet(t *testing.T) {
	uri, teardown := setupReplicaSetContainer(t)
	defer teardown()

	ctx := context.Background()
	store, err := Connect(ctx, uri, "testdb", WithTransactions(true))
	require.NoError(t, err)
	defer store.Close(ctx)

	assert.True(t, store.Transactional())

	queryID := bson.NewObjectID()
	_, err = store.Queries().InsertOne(ctx, bson.M{"_id": queryID, "recommendationCount": int64(1)})
	require.NoError(t, err)

	recID := bson.NewObjectID()
	_, err = store.Recommendations().InsertOne(ctx, bson.M{"_id": recID, "queryId": queryID.Hex()})
	require.NoError(t, err)

	countOf := func(t *testing.T, ctx context.Context) int64 {
		var doc struct {
			RecommendationCount int64 `bson:"recommendationCount"`
		}
		require.NoError(t, store.Queries().FindOne(ctx, bson.M{"_id": queryID}).Decode(&doc))
		return doc.RecommendationCount
	}

	decrement := func(ctx context.Context) error {
		res, err := store.Queries().UpdateOne(ctx,
			bson.M{"_id": queryID, "recommendationCount": bson.M{"$gte": 1}},
			bson.M{"$inc": bson.M{"recommendationCount": -1}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount != 1 {
			return errors.New("counter not decremented")
		}
		return nil
	}

	t.Run("failure after decrement rolls it back", func(t *testing.T) {
		boom := errors.New("delete failed")

		err := store.WithinTx(ctx, func(txCtx context.Context) error {
			if err := decrement(txCtx); err != nil {
				return err
			}
			assert.Equal(t, int64(0), countOf(t, txCtx))
			assert.Equal(t, int64(1), countOf(t, ctx))
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, int64(1), countOf(t, ctx))

		n, err := store.Recommendations().CountDocuments(ctx, bson.M{"_id": recID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("success commits decrement and delete together", func(t *testing.T) {
		err := store.WithinTx(ctx, func(txCtx context.Context) error {
			if err := decrement(txCtx); err != nil {
				return err
			}
			_, err := store.Recommendations().DeleteOne(txCtx, bson.M{"_id": recID})
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), countOf(t, ctx))

		n, err := store.Recommendations().CountDocuments(ctx, bson.M{"_id": recID})
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}
