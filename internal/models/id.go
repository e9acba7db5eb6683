package models

import "go.mongodb.org/mongo-driver/v2/bson"

// ParseID converts a hex path parameter into an object id.
func ParseID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return id, nil
}
