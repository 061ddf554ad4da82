package repository

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ToolRepository interface {
	AddTool(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error)
	GetTools(ctx context.Context) (data []bson.M, err error)
	GetToolByID(ctx context.Context, id string) (bson.M, error)
	UpdateTool(ctx context.Context, id string, data domain.Tool) (*mongo.UpdateResult, error)
	DeleteTool(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error)
	GetOrders(ctx context.Context, filter bson.M) (data []bson.M, err error)
	GetOrderByID(ctx context.Context, id string) (bson.M, error)
	AddPayment(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error)
	MarkOrderPaid(ctx context.Context, id string, transactionID interface{}) (*mongo.UpdateResult, error)
	UpdateOrderShipment(ctx context.Context, id string, shipment interface{}) (*mongo.UpdateResult, error)
	DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type UserRepository interface {
	GetUsers(ctx context.Context) (data []bson.M, err error)
	GetUserByEmail(ctx context.Context, email string) (bson.M, error)
	UpdateUserProfile(ctx context.Context, email string, data domain.User) (*mongo.UpdateResult, error)
	UpsertUser(ctx context.Context, email string, data bson.M) (*mongo.UpdateResult, error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error)
	GetReviews(ctx context.Context) (data []bson.M, err error)
}
