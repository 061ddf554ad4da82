package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User documents are keyed externally by email; the ObjectID is only the
// store-generated identity.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Username  string             `bson:"username" json:"username"`
	Address   string             `bson:"address" json:"address"`
	Phone     string             `bson:"phone" json:"phone"`
	Education string             `bson:"education" json:"education"`
	Linkedin  string             `bson:"linkedin" json:"linkedin"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
}
