package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

//go:generate mockgen -source=recommendation.go -destination=mock_recommendation.go -package=services

// RecommendationReader defines read-only operations for recommendations.
type RecommendationReader interface {
	List(ctx context.Context, filter models.RecommendationFilter) ([]models.Recommendation, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.Recommendation, error)
}

// RecommendationWriter defines write operations for recommendations.
type RecommendationWriter interface {
	Create(ctx context.Context, rec models.Recommendation) (*models.InsertResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error)
}

// CounterIncrementer adjusts the recommendation counter of a query.
// *QueryService satisfies it.
type CounterIncrementer interface {
	IncrementCounter(ctx context.Context, id string, delta int64) (*models.UpdateResult, error)
}

// Transactor runs a unit of work, atomically when the store supports it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	Transactional() bool
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RecommendationService handles recommendations and their side effect on
// the target query's counter.
type RecommendationService struct {
	reader      RecommendationReader
	writer      RecommendationWriter
	counter     CounterIncrementer
	tx          Transactor
	kafkaWriter KafkaWriter
}

// NewRecommendationService creates a new RecommendationService. kafkaWriter may be nil.
func NewRecommendationService(
	reader RecommendationReader,
	writer RecommendationWriter,
	counter CounterIncrementer,
	tx Transactor,
	kafkaWriter KafkaWriter,
) *RecommendationService {
	return &RecommendationService{
		reader:      reader,
		writer:      writer,
		counter:     counter,
		tx:          tx,
		kafkaWriter: kafkaWriter,
	}
}

func (svc *RecommendationService) List(ctx context.Context, filter models.RecommendationFilter) ([]models.Recommendation, error) {
	recs, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list recommendations",
			"owner", filter.OwnerEmail, "exclude", filter.ExcludeOwnerEmail, "err", err)
		return nil, err
	}
	return recs, nil
}

func (svc *RecommendationService) Get(ctx context.Context, id string) (*models.Recommendation, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	rec, err := svc.reader.Get(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to get recommendation", "id", id, "err", err)
		return nil, err
	}
	return rec, nil
}

// Create stores a recommendation. It does not touch the target query's
// counter; clients bump it with a separate increment call.
func (svc *RecommendationService) Create(ctx context.Context, rec models.Recommendation) (*models.InsertResult, error) {
	rec.ID = bson.NilObjectID
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	res, err := svc.writer.Create(ctx, rec)
	if err != nil {
		logger.Log.Errorw("failed to create recommendation", "query_id", rec.QueryID, "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.EventRecommendationCreated, res.InsertedID, rec.QueryID)
	return res, nil
}

// Delete decrements the counter of the referenced query and then removes the
// recommendation. A decrement that matches nothing never blocks the delete.
// Outside a transaction a failing decrement is logged and the delete proceeds;
// inside one it aborts the whole unit.
func (svc *RecommendationService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	var (
		res     *models.DeleteResult
		queryID string
	)
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		rec, err := svc.reader.Get(ctx, oid)
		if errors.Is(err, models.ErrNotFound) {
			res = &models.DeleteResult{Acknowledged: true}
			return nil
		}
		if err != nil {
			return err
		}
		queryID = rec.QueryID

		if _, err := svc.counter.IncrementCounter(ctx, rec.QueryID, -1); err != nil {
			soft := errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrInvalidID)
			if !soft && svc.tx.Transactional() {
				return err
			}
			logger.Log.Warnw("recommendation counter not decremented",
				"recommendation_id", id, "query_id", rec.QueryID, "err", err)
		}

		res, err = svc.writer.Delete(ctx, oid)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to delete recommendation", "id", id, "err", err)
		return nil, err
	}

	if res.DeletedCount > 0 {
		svc.publishEvent(ctx, models.EventRecommendationDeleted, id, queryID)
	}
	return res, nil
}

// publishEvent is best effort: failures are logged, never returned.
func (svc *RecommendationService) publishEvent(ctx context.Context, eventType, recommendationID, queryID string) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.RecommendationEvent{
		EventID:          uuid.NewString(),
		Type:             eventType,
		RecommendationID: recommendationID,
		QueryID:          queryID,
		Timestamp:        time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(queryID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}
