package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Query is a stored request for product advice, owned by the user in UserEmail.
type Query struct {
	ID                  bson.ObjectID `json:"_id" bson:"_id,omitempty"`                              // Store-assigned identifier
	UserEmail           string        `json:"user_email" bson:"user_email"`                          // Author email
	UserName            string        `json:"userName,omitempty" bson:"userName,omitempty"`          // Author display name
	UserImage           string        `json:"userImage,omitempty" bson:"userImage,omitempty"`        // Author avatar URL
	ProductName         string        `json:"productName" bson:"productName"`                        // Product the advice is about
	ProductBrand        string        `json:"productBrand" bson:"productBrand"`                      // Product brand
	ProductImageURL     string        `json:"productImageUrl" bson:"productImageUrl"`                // Product image reference
	QueryTitle          string        `json:"queryTitle" bson:"queryTitle"`                          // Short title
	ReasonDetails       string        `json:"reasonDetails" bson:"reasonDetails"`                    // Free-text reason
	RecommendationCount int64         `json:"recommendationCount" bson:"recommendationCount"`        // Live recommendation counter
	CreatedAt           time.Time     `json:"createdAt,omitzero" bson:"createdAt,omitempty"`         // Set on create
	Extra               bson.M        `json:"-" bson:",inline"`                                      // Client fields without a typed counterpart
}

func (q Query) MarshalJSON() ([]byte, error) {
	type plain Query
	return marshalWithExtra(plain(q), q.Extra)
}

func (q *Query) UnmarshalJSON(data []byte) error {
	type plain Query
	if err := json.Unmarshal(data, (*plain)(q)); err != nil {
		return err
	}

	extra, err := ExtraFields(data, plain{})
	if err != nil {
		return err
	}
	q.Extra = extra
	return nil
}

// QueryUpdate holds the field subset replaced by an owner edit.
// The recommendation counter is not part of it.
type QueryUpdate struct {
	ProductName     string `json:"productName" bson:"productName"`
	ProductBrand    string `json:"productBrand" bson:"productBrand"`
	ProductImageURL string `json:"productImageUrl" bson:"productImageUrl"`
	QueryTitle      string `json:"queryTitle" bson:"queryTitle"`
	ReasonDetails   string `json:"reasonDetails" bson:"reasonDetails"`
}

// QueryFilter narrows a query listing. An empty OwnerEmail lists everything.
type QueryFilter struct {
	OwnerEmail string
}
