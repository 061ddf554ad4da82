package service

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderServiceImpl struct {
	repo repository.OrderRepository
}

func CreateOrderService(repo repository.OrderRepository) OrderService {
	return &OrderServiceImpl{repo: repo}
}

func (s *OrderServiceImpl) AddOrder(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error) {
	return s.repo.AddOrder(ctx, data)
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, email string) ([]bson.M, error) {
	filter := bson.M{}
	if email != "" {
		filter = bson.M{"customerEmail": email}
	}

	return s.repo.GetOrders(ctx, filter)
}

// GetMyOrders filters on the "email" field, not "customerEmail"; the two
// listing paths disagree on the field name and both are kept as-is.
func (s *OrderServiceImpl) GetMyOrders(ctx context.Context, email string) ([]bson.M, error) {
	return s.repo.GetOrders(ctx, bson.M{"email": email})
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string) (bson.M, error) {
	return s.repo.GetOrderByID(ctx, id)
}

// PayOrder records the payment document first and then flips the order to
// paid. The two writes are independent; a failure between them leaves a
// payment without a matching paid order.
func (s *OrderServiceImpl) PayOrder(ctx context.Context, id string, payment bson.M) (*mongo.UpdateResult, error) {
	_, err := s.repo.AddPayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	return s.repo.MarkOrderPaid(ctx, id, payment["transactionId"])
}

func (s *OrderServiceImpl) UpdateShipping(ctx context.Context, id string, shipping interface{}) (*mongo.UpdateResult, error) {
	return s.repo.UpdateOrderShipment(ctx, id, shipping)
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return s.repo.DeleteOrder(ctx, id)
}
