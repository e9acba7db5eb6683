package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(coll *mongo.Collection) *UserReadRepository {
	return &UserReadRepository{coll: coll}
}

func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err == nil {
		err = cursor.All(ctx, &users)
	}

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "find",
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserReadRepository) Get(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "findOne",
		"id", id.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(coll *mongo.Collection) *UserWriteRepository {
	return &UserWriteRepository{coll: coll}
}

func (r *UserWriteRepository) Create(ctx context.Context, user models.User) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, user)

	// Never log the password hash.
	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "insertOne",
		"email", user.Email,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toInsertResult(res), nil
}

// Upsert sets email and password on the user with the given id. An unknown
// id creates a document holding exactly those two fields.
func (r *UserWriteRepository) Upsert(ctx context.Context, id bson.ObjectID, email, passwordHash string) (*models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"email": email, "password": passwordHash}},
		options.UpdateOne().SetUpsert(true),
	)

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "updateOne",
		"id", id.Hex(),
		"upsert", true,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toUpdateResult(res), nil
}

// UpdateLastSignIn looks the user up by email. Matching nothing is not an error.
func (r *UserWriteRepository) UpdateLastSignIn(ctx context.Context, email, lastSignInTime string) (*models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"lastSignInTime": lastSignInTime}},
	)

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "updateOne",
		"email", email,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toUpdateResult(res), nil
}

func (r *UserWriteRepository) Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "deleteOne",
		"id", id.Hex(),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toDeleteResult(res), nil
}
