package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin marks a user allowed to manage doctors and other users.
const RoleAdmin = "admin"

// User model. Created on first login; Role is empty for regular users.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
