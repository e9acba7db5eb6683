package models

import "go.mongodb.org/mongo-driver/v2/bson"

// User represents an account document in the users collection.
type User struct {
	ID             bson.ObjectID `json:"_id" bson:"_id,omitempty"`                                // Primary key
	Name           string        `json:"name,omitempty" bson:"name,omitempty"`                    // Display name
	Email          string        `json:"email" bson:"email"`                                      // Natural lookup key, not unique
	Password       string        `json:"-" bson:"password,omitempty"`                             // Bcrypt hash, never serialized
	PhotoURL       string        `json:"photo,omitempty" bson:"photo,omitempty"`                  // Avatar URL
	CreationTime   string        `json:"creationTime,omitempty" bson:"creationTime,omitempty"`    // Client supplied account creation time
	LastSignInTime string        `json:"lastSignInTime,omitempty" bson:"lastSignInTime,omitempty"` // Client supplied last sign-in time
	Extra          bson.M        `json:"-" bson:",inline"`                                        // Profile fields without a typed counterpart
}

// MarshalJSON emits the typed fields plus Extra. The password hash stays out.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalWithExtra(plain(u), u.Extra)
}
