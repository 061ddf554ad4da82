package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order content is client-supplied and stored as given; these are the fields
// the service itself reads or writes.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerEmail string             `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Shipment      interface{}        `bson:"shipment,omitempty" json:"shipment,omitempty"`
}
