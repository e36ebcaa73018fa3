package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricePerUnit and TotalPrice are snapshots taken at the moment stock was
// decremented; later catalog price changes do not rewrite order history.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"userId"`
	MedicineID   string             `bson:"medicineId"`
	Quantity     int                `bson:"quantity"`
	PricePerUnit float64            `bson:"pricePerUnit"`
	TotalPrice   float64            `bson:"totalPrice"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
