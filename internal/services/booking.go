package services

import (
	"context"
	"errors"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingService struct {
	collection *mongo.Collection
}

func NewBookingService(db *mongo.Database) *BookingService {
	return &BookingService{collection: db.Collection("bookings")}
}

// CreateBooking inserts a booking unless one already exists for the same
// (email, appointmentDate, treatment). The check and the insert are a
// single upsert keyed on that tuple, so concurrent duplicates cannot
// both get through.
func (s *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	booking.ID = primitive.NewObjectID()
	booking.Paid = false

	filter := bson.M{
		"email":           booking.Email,
		"appointmentDate": booking.AppointmentDate,
		"treatment":       booking.Treatment,
	}
	update := bson.M{"$setOnInsert": booking}

	result, err := s.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", err
	}
	if result.UpsertedCount == 0 {
		return "", ErrDuplicateBooking
	}

	return booking.ID.Hex(), nil
}

// BookingsByEmail returns all bookings belonging to one user.
func (s *BookingService) BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cur, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// BookingByID fetches one booking by its hex id.
func (s *BookingService) BookingByID(ctx context.Context, id string) (*models.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var booking models.Booking
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
