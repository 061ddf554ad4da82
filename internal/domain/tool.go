package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Tool struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Image             string             `bson:"image" json:"image"`
	Description       string             `bson:"description" json:"description"`
	Price             float64            `bson:"price" json:"price"`
	MinQuantity       int64              `bson:"min_quantity" json:"min_quantity"`
	AvailableQuantity int64              `bson:"available_quantity" json:"available_quantity"`
}
