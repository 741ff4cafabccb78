package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor represents a doctor record managed by admins.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Image     string             `bson:"img" json:"img"`
}
