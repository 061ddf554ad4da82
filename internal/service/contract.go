package service

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ToolService interface {
	AddTool(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error)
	GetTools(ctx context.Context) ([]bson.M, error)
	GetToolByID(ctx context.Context, id string) (bson.M, error)
	UpdateTool(ctx context.Context, id string, data dto.ToolRequest) (*mongo.UpdateResult, error)
	DeleteTool(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type OrderService interface {
	AddOrder(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error)
	GetOrders(ctx context.Context, email string) ([]bson.M, error)
	GetMyOrders(ctx context.Context, email string) ([]bson.M, error)
	GetOrderByID(ctx context.Context, id string) (bson.M, error)
	PayOrder(ctx context.Context, id string, payment bson.M) (*mongo.UpdateResult, error)
	UpdateShipping(ctx context.Context, id string, shipping interface{}) (*mongo.UpdateResult, error)
	DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type UserService interface {
	GetUsers(ctx context.Context) ([]bson.M, error)
	UpdateUserProfile(ctx context.Context, email string, data dto.UserProfileRequest) (dto.UserTokenResponse, error)
	UpsertUser(ctx context.Context, email string, data bson.M) (dto.UserTokenResponse, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type ReviewService interface {
	AddReview(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error)
	GetReviews(ctx context.Context) ([]bson.M, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, data dto.PaymentIntentRequest) (dto.PaymentIntentResponse, error)
}

// PaymentGateway is the external processor surface the payment service
// depends on. Amounts are integer minor units.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
