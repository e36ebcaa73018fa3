package medicines

import (
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Client, dbName string) MedicineRepository {
	return &MedicineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicines),
	}
}

func (r *MedicineMongoRepository) CreateMedicine(ctx context.Context, medicineModel *models.Medicine) (string, error) {
	result, err := r.Collection.InsertOne(ctx, medicineModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var medicine models.Medicine
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) FindByCategory(ctx context.Context, category string, pagination *requests.Pagination) ([]models.Medicine, error) {
	return r.findByFilter(ctx, bson.M{"category": category}, pagination)
}

func (r *MedicineMongoRepository) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Medicine, error) {
	return r.findByFilter(ctx, bson.M{}, pagination)
}

func (r *MedicineMongoRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}

func (r *MedicineMongoRepository) findByFilter(ctx context.Context, filter bson.M, pagination *requests.Pagination) ([]models.Medicine, error) {
	opts := options.Find().
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medicines := make([]models.Medicine, 0)
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicines, nil
}

func (r *MedicineMongoRepository) UpdateStock(ctx context.Context, medicineID string, stock int) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"stock": stock}})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *MedicineMongoRepository) UpdateImage(ctx context.Context, medicineID, objectName string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"image": objectName}})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *MedicineMongoRepository) DecrementStock(ctx context.Context, medicineID string, quantity int) (*models.Medicine, error) {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":   objectID,
		"stock": bson.M{"$gte": quantity},
	}
	update := bson.M{"$inc": bson.M{"stock": -quantity}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var medicine models.Medicine
	err = r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &medicine, nil
}
