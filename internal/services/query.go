package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

//go:generate mockgen -source=query.go -destination=mock_query.go -package=services

// DefaultRecentLimit is the size of the home page feed.
const DefaultRecentLimit int64 = 6

// QueryReader defines read-only operations for queries.
type QueryReader interface {
	List(ctx context.Context, filter models.QueryFilter) ([]models.Query, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Query, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.Query, error)
}

// QueryWriter defines write operations for queries.
type QueryWriter interface {
	Create(ctx context.Context, query models.Query) (*models.InsertResult, error)
	Replace(ctx context.Context, id bson.ObjectID, update models.QueryUpdate) (*models.UpdateResult, error)
	IncrementCounter(ctx context.Context, id bson.ObjectID, delta int64) (*models.UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error)
}

// QueryService handles CRUD and counter maintenance for queries.
type QueryService struct {
	reader QueryReader
	writer QueryWriter
}

// NewQueryService creates a new QueryService instance.
func NewQueryService(reader QueryReader, writer QueryWriter) *QueryService {
	return &QueryService{
		reader: reader,
		writer: writer,
	}
}

// List returns all queries, or those of filter.OwnerEmail when set.
func (svc *QueryService) List(ctx context.Context, filter models.QueryFilter) ([]models.Query, error) {
	queries, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list queries", "owner", filter.OwnerEmail, "err", err)
		return nil, err
	}
	return queries, nil
}

// ListRecent returns up to limit queries, newest first. A non-positive limit
// falls back to DefaultRecentLimit.
func (svc *QueryService) ListRecent(ctx context.Context, limit int64) ([]models.Query, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	queries, err := svc.reader.ListRecent(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list recent queries", "limit", limit, "err", err)
		return nil, err
	}
	return queries, nil
}

// Get returns models.ErrNotFound when the id matches nothing.
func (svc *QueryService) Get(ctx context.Context, id string) (*models.Query, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	query, err := svc.reader.Get(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to get query", "id", id, "err", err)
		return nil, err
	}
	return query, nil
}

// Create stores a new query. The store assigns the id; a negative counter
// supplied by the client is clamped to zero.
func (svc *QueryService) Create(ctx context.Context, query models.Query) (*models.InsertResult, error) {
	query.ID = bson.NilObjectID
	if query.RecommendationCount < 0 {
		query.RecommendationCount = 0
	}
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now().UTC()
	}

	res, err := svc.writer.Create(ctx, query)
	if err != nil {
		logger.Log.Errorw("failed to create query", "owner", query.UserEmail, "err", err)
		return nil, err
	}
	return res, nil
}

// Replace overwrites the editable fields of a query, upserting unknown ids.
func (svc *QueryService) Replace(ctx context.Context, id string, update models.QueryUpdate) (*models.UpdateResult, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	res, err := svc.writer.Replace(ctx, oid, update)
	if err != nil {
		logger.Log.Errorw("failed to replace query", "id", id, "err", err)
		return nil, err
	}
	return res, nil
}

// IncrementCounter adds delta to the recommendation counter and returns
// models.ErrNotFound when nothing matched, including a decrement that would
// take the counter below zero.
func (svc *QueryService) IncrementCounter(ctx context.Context, id string, delta int64) (*models.UpdateResult, error) {
	if delta == 0 {
		return nil, models.ErrInvalidDelta
	}

	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	res, err := svc.writer.IncrementCounter(ctx, oid, delta)
	if err != nil {
		logger.Log.Errorw("failed to update recommendation counter", "id", id, "delta", delta, "err", err)
		return nil, err
	}
	if res.MatchedCount == 0 {
		logger.Log.Warnw("recommendation counter not updated", "id", id, "delta", delta)
		return nil, models.ErrNotFound
	}
	return res, nil
}

func (svc *QueryService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	res, err := svc.writer.Delete(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to delete query", "id", id, "err", err)
		return nil, err
	}
	return res, nil
}
