package repository

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBRepositoryImpl is the only data access surface: five collections on
// one database handle, no transactions, no multi-document atomicity.
type MongoDBRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) *MongoDBRepositoryImpl {
	return &MongoDBRepositoryImpl{db: db}
}

func (r *MongoDBRepositoryImpl) AddTool(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error) {
	result, err := r.db.Collection("tools").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddTool").Msg("")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) GetTools(ctx context.Context) (data []bson.M, err error) {
	cursor, err := r.db.Collection("tools").Find(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTools").Msg("")
		return
	}

	// an empty collection must serialize as [], not null
	data = []bson.M{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTools").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRepositoryImpl) GetToolByID(ctx context.Context, id string) (bson.M, error) {
	toolID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetToolByID").Msg("")
		return nil, err
	}

	var tool bson.M
	filter := bson.D{{Key: "_id", Value: toolID}}

	err = r.db.Collection("tools").FindOne(ctx, filter).Decode(&tool)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetToolByID").Msg("")
		return nil, err
	}

	return tool, nil
}

func (r *MongoDBRepositoryImpl) UpdateTool(ctx context.Context, id string, data domain.Tool) (*mongo.UpdateResult, error) {
	toolID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateTool").Msg("")
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: toolID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "image", Value: data.Image},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "min_quantity", Value: data.MinQuantity},
		{Key: "available_quantity", Value: data.AvailableQuantity},
	}}}
	opts := options.Update().SetUpsert(true)

	result, err := r.db.Collection("tools").UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateTool").Msg("Failed to update tool")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) DeleteTool(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	toolID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteTool").Msg("")
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: toolID}}

	result, err := r.db.Collection("tools").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteTool").Msg("")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) AddOrder(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) GetOrders(ctx context.Context, filter bson.M) (data []bson.M, err error) {
	cursor, err := r.db.Collection("orders").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	data = []bson.M{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRepositoryImpl) GetOrderByID(ctx context.Context, id string) (bson.M, error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return nil, err
	}

	var order bson.M
	filter := bson.D{{Key: "_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return nil, err
	}

	return order, nil
}

func (r *MongoDBRepositoryImpl) AddPayment(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error) {
	result, err := r.db.Collection("payments").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddPayment").Msg("")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) MarkOrderPaid(ctx context.Context, id string, transactionID interface{}) (*mongo.UpdateResult, error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkOrderPaid").Msg("")
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: orderID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "paid", Value: true},
		{Key: "transactionId", Value: transactionID},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkOrderPaid").Msg("Failed to update order")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) UpdateOrderShipment(ctx context.Context, id string, shipment interface{}) (*mongo.UpdateResult, error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderShipment").Msg("")
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: orderID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "shipment", Value: shipment},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderShipment").Msg("Failed to update order")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteOrder").Msg("")
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: orderID}}

	result, err := r.db.Collection("orders").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteOrder").Msg("")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) GetUsers(ctx context.Context) (data []bson.M, err error) {
	cursor, err := r.db.Collection("users").Find(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	data = []bson.M{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (bson.M, error) {
	var user bson.M
	filter := bson.D{{Key: "email", Value: email}}

	err := r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return nil, err
	}

	return user, nil
}

func (r *MongoDBRepositoryImpl) UpdateUserProfile(ctx context.Context, email string, data domain.User) (*mongo.UpdateResult, error) {
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "username", Value: data.Username},
		{Key: "address", Value: data.Address},
		{Key: "phone", Value: data.Phone},
		{Key: "education", Value: data.Education},
		{Key: "linkedin", Value: data.Linkedin},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUserProfile").Msg("Failed to update user")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) UpsertUser(ctx context.Context, email string, data bson.M) (*mongo.UpdateResult, error) {
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: data}}
	opts := options.Update().SetUpsert(true)

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertUser").Msg("Failed to upsert user")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) AddReview(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error) {
	result, err := r.db.Collection("reviews").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
		return nil, err
	}

	return result, nil
}

func (r *MongoDBRepositoryImpl) GetReviews(ctx context.Context) (data []bson.M, err error) {
	cursor, err := r.db.Collection("reviews").Find(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviews").Msg("")
		return
	}

	data = []bson.M{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviews").Msg("")
		return
	}

	return data, nil
}
