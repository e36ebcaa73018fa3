package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Specialization string             `bson:"specialization,omitempty"`
	Email          string             `bson:"email,omitempty"`
	Status         string             `bson:"status"`
	TimeModel      `bson:",inline"`
}
