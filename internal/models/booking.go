package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking reserves one slot of one treatment on one date for one user.
// Unique per (email, appointmentDate, treatment).
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email           string             `bson:"email" json:"email"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	Slot            string             `bson:"slot" json:"slot"`
	Price           float64            `bson:"price" json:"price"`
	Paid            bool               `bson:"paid" json:"paid"`
}
