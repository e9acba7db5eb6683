package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Recommendation is one user's answer to a Query.
type Recommendation struct {
	ID                      bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	QueryID                 string        `json:"queryId" bson:"queryId"`                                   // Hex id of the target Query
	QueryTitle              string        `json:"queryTitle,omitempty" bson:"queryTitle,omitempty"`         // Copied from the Query for display
	ProductName             string        `json:"productName,omitempty" bson:"productName,omitempty"`       // Copied from the Query for display
	RecommenderEmail        string        `json:"recommender_email" bson:"recommender_email"`               // Responding user
	RecommenderName         string        `json:"recommender_name,omitempty" bson:"recommender_name,omitempty"`
	CurrentUserEmail        string        `json:"current_user_email" bson:"current_user_email"`             // Owner of the target Query
	RecommendationTitle     string        `json:"recommendationTitle" bson:"recommendationTitle"`
	RecommendedProductName  string        `json:"recommendedProductName" bson:"recommendedProductName"`
	RecommendedProductImage string        `json:"recommendedProductImage" bson:"recommendedProductImage"`
	RecommendationReason    string        `json:"recommendationReason" bson:"recommendationReason"`
	CreatedAt               time.Time     `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	Extra                   bson.M        `json:"-" bson:",inline"`
}

func (rec Recommendation) MarshalJSON() ([]byte, error) {
	type plain Recommendation
	return marshalWithExtra(plain(rec), rec.Extra)
}

func (rec *Recommendation) UnmarshalJSON(data []byte) error {
	type plain Recommendation
	if err := json.Unmarshal(data, (*plain)(rec)); err != nil {
		return err
	}

	extra, err := ExtraFields(data, plain{})
	if err != nil {
		return err
	}
	rec.Extra = extra
	return nil
}

// RecommendationFilter narrows a recommendation listing.
// ExcludeOwnerEmail wins over OwnerEmail when both are set.
type RecommendationFilter struct {
	OwnerEmail        string
	ExcludeOwnerEmail string
}
