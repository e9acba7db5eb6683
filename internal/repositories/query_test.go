package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

func TestQueryRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	coll := db.Collection("recs")
	readRepo := NewQueryReadRepository(coll)
	writeRepo := NewQueryWriteRepository(coll)

	t.Run("ListRecent on empty collection", func(t *testing.T) {
		got, err := readRepo.ListRecent(ctx, 6)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	var ids []string
	for i, email := range []string{"a@x.io", "b@x.io", "a@x.io", "c@x.io", "a@x.io", "b@x.io", "c@x.io", "a@x.io"} {
		res, err := writeRepo.Create(ctx, models.Query{
			UserEmail:   email,
			ProductName: "Product",
			QueryTitle:  string(rune('A' + i)),
		})
		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		ids = append(ids, res.InsertedID)
	}

	t.Run("List unfiltered and by owner", func(t *testing.T) {
		all, err := readRepo.List(ctx, models.QueryFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 8)

		mine, err := readRepo.List(ctx, models.QueryFilter{OwnerEmail: "a@x.io"})
		require.NoError(t, err)
		assert.Len(t, mine, 4)
		for _, q := range mine {
			assert.Equal(t, "a@x.io", q.UserEmail)
		}
	})

	t.Run("ListRecent caps and orders newest first", func(t *testing.T) {
		got, err := readRepo.ListRecent(ctx, 6)
		require.NoError(t, err)
		require.Len(t, got, 6)
		for i, q := range got {
			assert.Equal(t, ids[len(ids)-1-i], q.ID.Hex())
		}
	})

	t.Run("Get", func(t *testing.T) {
		id, _ := bson.ObjectIDFromHex(ids[0])
		q, err := readRepo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "A", q.QueryTitle)

		_, err = readRepo.Get(ctx, bson.NewObjectID())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Create keeps untyped fields", func(t *testing.T) {
		res, err := writeRepo.Create(ctx, models.Query{
			UserEmail:   "d@x.io",
			ProductName: "Phone",
			Extra:       bson.M{"boycottReason": "x", "currentDateAndTime": "2024"},
		})
		require.NoError(t, err)

		id, _ := bson.ObjectIDFromHex(res.InsertedID)
		q, err := readRepo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Phone", q.ProductName)
		assert.Equal(t, bson.M{"boycottReason": "x", "currentDateAndTime": "2024"}, q.Extra)

		_, err = writeRepo.Delete(ctx, id)
		require.NoError(t, err)
	})

	t.Run("IncrementCounter", func(t *testing.T) {
		id, _ := bson.ObjectIDFromHex(ids[1])

		res, err := writeRepo.IncrementCounter(ctx, id, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)

		res, err = writeRepo.IncrementCounter(ctx, id, -1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)

		// counter is 0, a further decrement must not match
		res, err = writeRepo.IncrementCounter(ctx, id, -1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)

		q, err := readRepo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), q.RecommendationCount)

		res, err = writeRepo.IncrementCounter(ctx, bson.NewObjectID(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
	})

	t.Run("Replace keeps counter", func(t *testing.T) {
		id, _ := bson.ObjectIDFromHex(ids[2])
		_, err := writeRepo.IncrementCounter(ctx, id, 3)
		require.NoError(t, err)

		res, err := writeRepo.Replace(ctx, id, models.QueryUpdate{ProductName: "New", QueryTitle: "Edited"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Nil(t, res.UpsertedID)

		q, err := readRepo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "New", q.ProductName)
		assert.Equal(t, "Edited", q.QueryTitle)
		assert.Equal(t, int64(3), q.RecommendationCount)
		assert.Equal(t, "a@x.io", q.UserEmail)
	})

	t.Run("Replace upserts unknown id", func(t *testing.T) {
		id := bson.NewObjectID()
		res, err := writeRepo.Replace(ctx, id, models.QueryUpdate{ProductName: "Ghost"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, id.Hex(), *res.UpsertedID)
	})

	t.Run("Delete", func(t *testing.T) {
		id, _ := bson.ObjectIDFromHex(ids[3])
		res, err := writeRepo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)

		res, err = writeRepo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.DeletedCount)
	})
}
