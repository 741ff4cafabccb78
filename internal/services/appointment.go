package services

import (
	"context"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentService struct {
	options  *mongo.Collection
	bookings *mongo.Collection
}

func NewAppointmentService(db *mongo.Database) *AppointmentService {
	return &AppointmentService{
		options:  db.Collection("appointmentOptions"),
		bookings: db.Collection("bookings"),
	}
}

// OptionsForDate returns every treatment template with only the slots
// still open on the given date. Templates are never mutated; an unknown
// date simply has no bookings, so every slot comes back open.
func (s *AppointmentService) OptionsForDate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	cur, err := s.options.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var opts []models.AppointmentOption
	if err := cur.All(ctx, &opts); err != nil {
		return nil, err
	}

	bookingCur, err := s.bookings.Find(ctx, bson.M{"appointmentDate": date})
	if err != nil {
		return nil, err
	}
	defer bookingCur.Close(ctx)

	var alreadyBooked []models.Booking
	if err := bookingCur.All(ctx, &alreadyBooked); err != nil {
		return nil, err
	}

	applyBookings(opts, alreadyBooked)

	return opts, nil
}

// applyBookings replaces each option's slot list with the slots not yet
// consumed by a booking for the same treatment.
func applyBookings(opts []models.AppointmentOption, alreadyBooked []models.Booking) {
	for i := range opts {
		var bookedSlots []string
		for _, booking := range alreadyBooked {
			if booking.Treatment == opts[i].Name {
				bookedSlots = append(bookedSlots, booking.Slot)
			}
		}
		opts[i].Slots = remainingSlots(opts[i].Slots, bookedSlots)
	}
}

// remainingSlots subtracts booked from template, preserving template
// order and leaving the template slice untouched.
func remainingSlots(template, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}

	remaining := make([]string, 0, len(template))
	for _, slot := range template {
		if _, ok := taken[slot]; !ok {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

// OptionsForDateAggregate computes the same availability as
// OptionsForDate, but store-side: a $lookup of bookings on the treatment
// name filtered to the date, then $setDifference against the template
// slots. Must stay result-equivalent (as sets) with OptionsForDate.
func (s *AppointmentService) OptionsForDateAggregate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	pipeline := []bson.M{
		{
			"$lookup": bson.M{
				"from":         "bookings",
				"localField":   "name",
				"foreignField": "treatment",
				"pipeline": []bson.M{
					{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$appointmentDate", date}}}},
				},
				"as": "booked",
			},
		},
		{
			"$project": bson.M{
				"name":  1,
				"price": 1,
				"slots": 1,
				"booked": bson.M{
					"$map": bson.M{
						"input": "$booked",
						"as":    "book",
						"in":    "$$book.slot",
					},
				},
			},
		},
		{
			"$project": bson.M{
				"name":  1,
				"price": 1,
				"slots": bson.M{"$setDifference": bson.A{"$slots", "$booked"}},
			},
		},
	}

	cur, err := s.options.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var opts []models.AppointmentOption
	if err := cur.All(ctx, &opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// Specialties lists treatment names only.
func (s *AppointmentService) Specialties(ctx context.Context) ([]models.AppointmentSpecialty, error) {
	projection := bson.D{
		{Key: "name", Value: 1},
	}
	cur, err := s.options.Find(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var specialties []models.AppointmentSpecialty
	if err := cur.All(ctx, &specialties); err != nil {
		return nil, err
	}

	return specialties, nil
}
