package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a confirmed charge for a booking. Immutable once
// inserted; inserting one flips the referenced booking to paid.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
