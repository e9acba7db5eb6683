package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

type RecommendationReadRepository struct {
	coll *mongo.Collection
}

func NewRecommendationReadRepository(coll *mongo.Collection) *RecommendationReadRepository {
	return &RecommendationReadRepository{coll: coll}
}

// List matches on the query owner's email. ExcludeOwnerEmail takes precedence
// and returns recommendations made on everybody else's queries.
func (r *RecommendationReadRepository) List(ctx context.Context, filter models.RecommendationFilter) ([]models.Recommendation, error) {
	q := bson.M{}
	switch {
	case filter.ExcludeOwnerEmail != "":
		q["current_user_email"] = bson.M{"$ne": filter.ExcludeOwnerEmail}
	case filter.OwnerEmail != "":
		q["current_user_email"] = filter.OwnerEmail
	}

	recs := []models.Recommendation{}
	cursor, err := r.coll.Find(ctx, q)
	if err == nil {
		err = cursor.All(ctx, &recs)
	}

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "find",
		"filter", q,
		"result", len(recs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RecommendationReadRepository) Get(ctx context.Context, id bson.ObjectID) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)

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
	return &rec, nil
}

type RecommendationWriteRepository struct {
	coll *mongo.Collection
}

func NewRecommendationWriteRepository(coll *mongo.Collection) *RecommendationWriteRepository {
	return &RecommendationWriteRepository{coll: coll}
}

func (r *RecommendationWriteRepository) Create(ctx context.Context, rec models.Recommendation) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, rec)

	logger.Log.Infow("store command",
		"collection", r.coll.Name(),
		"op", "insertOne",
		"query_id", rec.QueryID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return toInsertResult(res), nil
}

func (r *RecommendationWriteRepository) Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error) {
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
