package main

import (
	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/drivers/database"
	"clinicare-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the service relies on. Safe to run repeatedly; Mongo
// treats an existing identical index as a no-op.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		constvars.MongoCollectionDoctors: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		constvars.MongoCollectionAppointments: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
		constvars.MongoCollectionMedicines: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		constvars.MongoCollectionOrders: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			logrus.Fatalf("Error creating indexes on %s: %v", collection, err)
		}
		logrus.Printf("Created indexes on %s: %v", collection, names)
	}

	logrus.Println("Migration complete")
}
