package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

func TestUserRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	coll := db.Collection("users")
	readRepo := NewUserReadRepository(coll)
	writeRepo := NewUserWriteRepository(coll)

	res, err := writeRepo.Create(ctx, models.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hash",
		Extra:    bson.M{"role": "buyer"},
	})
	require.NoError(t, err)
	aliceID, _ := bson.ObjectIDFromHex(res.InsertedID)

	t.Run("List and Get", func(t *testing.T) {
		users, err := readRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		u, err := readRepo.Get(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "hash", u.Password)
		assert.Equal(t, bson.M{"role": "buyer"}, u.Extra)

		_, err = readRepo.Get(ctx, bson.NewObjectID())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("UpdateLastSignIn", func(t *testing.T) {
		res, err := writeRepo.UpdateLastSignIn(ctx, "alice@example.com", "2024-12-10T10:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)

		u, err := readRepo.Get(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, "2024-12-10T10:00:00Z", u.LastSignInTime)

		res, err = writeRepo.UpdateLastSignIn(ctx, "nobody@example.com", "2024-12-10T10:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
	})

	t.Run("Upsert existing keeps other fields", func(t *testing.T) {
		res, err := writeRepo.Upsert(ctx, aliceID, "alice@new.io", "hash2")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)

		u, err := readRepo.Get(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, "alice@new.io", u.Email)
		assert.Equal(t, "hash2", u.Password)
		assert.Equal(t, "Alice", u.Name)
	})

	t.Run("Upsert unknown id creates exactly email and password", func(t *testing.T) {
		id := bson.NewObjectID()
		res, err := writeRepo.Upsert(ctx, id, "bob@example.com", "bobhash")
		require.NoError(t, err)
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, id.Hex(), *res.UpsertedID)

		var raw bson.M
		err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
		require.NoError(t, err)
		assert.Len(t, raw, 3) // _id, email, password
		assert.Equal(t, "bob@example.com", raw["email"])
		assert.Equal(t, "bobhash", raw["password"])
	})

	t.Run("Delete", func(t *testing.T) {
		res, err := writeRepo.Delete(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
	})
}
