package repositories

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

func idString(v any) string {
	if oid, ok := v.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}

func toInsertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{
		Acknowledged: res.Acknowledged,
		InsertedID:   idString(res.InsertedID),
	}
}

func toUpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	out := &models.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}

func toDeleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{
		Acknowledged: res.Acknowledged,
		DeletedCount: res.DeletedCount,
	}
}
