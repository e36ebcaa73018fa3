package orders

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderMongoRepository struct {
	Collection *mongo.Collection
}

func NewOrderMongoRepository(db *mongo.Client, dbName string) OrderRepository {
	return &OrderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOrders),
	}
}

func (r *OrderMongoRepository) CreateOrder(ctx context.Context, orderModel *models.Order) (string, error) {
	result, err := r.Collection.InsertOne(ctx, orderModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *OrderMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	return r.findByFilter(ctx, bson.M{"userId": userID})
}

func (r *OrderMongoRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *OrderMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, nil
}
