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

type QueryReadRepository struct {
	coll *mongo.Collection
}

func NewQueryReadRepository(coll *mongo.Collection) *QueryReadRepository {
	return &QueryReadRepository{coll: coll}
}

// List returns every query, or only the ones authored by filter.OwnerEmail.
func (r *QueryReadRepository) List(ctx context.Context, filter models.QueryFilter) ([]models.Query, error) {
	q := bson.M{}
	if filter.OwnerEmail != "" {
		q["user_email"] = filter.OwnerEmail
	}
	return r.find(ctx, q)
}

// ListRecent returns at most limit queries, newest first. Object ids embed
// their creation time, so sorting on _id orders by recency.
func (r *QueryReadRepository) ListRecent(ctx context.Context, limit int64) ([]models.Query, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *QueryReadRepository) find(ctx context.Context, q bson.M, opts ...options.Lister[options.FindOptions]) ([]models.Query, error) {
	queries := []models.Query{}

	cursor, err := r.coll.Find(ctx, q, opts...)
	if err == nil {
		err = cursor.All(ctx, &queries)
	}

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "find",
		"filter", q,
		"result", len(queries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return queries, nil
}

// Get returns models.ErrNotFound when no query has the given id.
func (r *QueryReadRepository) Get(ctx context.Context, id bson.ObjectID) (*models.Query, error) {
	var query models.Query
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&query)

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
	return &query, nil
}

type QueryWriteRepository struct {
	coll *mongo.Collection
}

func NewQueryWriteRepository(coll *mongo.Collection) *QueryWriteRepository {
	return &QueryWriteRepository{coll: coll}
}

func (r *QueryWriteRepository) Create(ctx context.Context, query models.Query) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, query)

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "insertOne",
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toInsertResult(res), nil
}

// Replace overwrites the editable field subset of a query, creating the
// document when the id is unknown. The recommendation counter is untouched.
func (r *QueryWriteRepository) Replace(ctx context.Context, id bson.ObjectID, update models.QueryUpdate) (*models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
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

// IncrementCounter adds delta to the recommendation counter. A negative delta
// only matches documents whose counter stays non-negative afterwards.
func (r *QueryWriteRepository) IncrementCounter(ctx context.Context, id bson.ObjectID, delta int64) (*models.UpdateResult, error) {
	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["recommendationCount"] = bson.M{"$gte": -delta}
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"recommendationCount": delta}})

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "updateOne",
		"filter", filter,
		"inc", delta,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toUpdateResult(res), nil
}

func (r *QueryWriteRepository) Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error) {
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
