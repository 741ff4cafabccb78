package services

import (
	"context"
	"time"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentService struct {
	payments *mongo.Collection
	bookings *mongo.Collection
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{
		payments: db.Collection("payments"),
		bookings: db.Collection("bookings"),
	}
}

// RecordPayment inserts the payment document, then flips the referenced
// booking to paid. The two writes are not transactional; if the second
// fails the error surfaces so the caller sees the booking unmarked.
func (s *PaymentService) RecordPayment(ctx context.Context, payment *models.Payment) (string, error) {
	bookingID, err := primitive.ObjectIDFromHex(payment.BookingID)
	if err != nil {
		return "", ErrNotFound
	}

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()

	if _, err := s.payments.InsertOne(ctx, payment); err != nil {
		return "", err
	}

	update := bson.M{"$set": bson.M{"paid": true}}
	result, err := s.bookings.UpdateOne(ctx, bson.M{"_id": bookingID}, update)
	if err != nil {
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", ErrNotFound
	}

	return payment.ID.Hex(), nil
}
