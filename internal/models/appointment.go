package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentOption is a treatment template: a fixed price and the full
// daily slot list. Bookings never mutate it.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// AppointmentSpecialty is the name-only projection of an option, used by
// the specialty listing endpoint.
type AppointmentSpecialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
}
