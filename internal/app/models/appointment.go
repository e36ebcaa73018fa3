package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserID and DoctorID are kept in stringified form so lookups match by plain
// equality regardless of how the caller obtained the id.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"userId"`
	DoctorID        string             `bson:"doctorId"`
	AppointmentDate string             `bson:"appointmentDate"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
}
