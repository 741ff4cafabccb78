package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/middleware"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/services"
	"github.com/gorilla/mux"
)

type BookingStore interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	BookingByID(ctx context.Context, id string) (*models.Booking, error)
}

type BookingHandler struct {
	store BookingStore
}

func NewBookingHandler(store BookingStore) *BookingHandler {
	return &BookingHandler{store: store}
}

// List handles GET /bookings?email= — the email must match the
// authenticated token.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	decodedEmail, ok := middleware.EmailFromContext(r.Context())
	if !ok || decodedEmail != email {
		http.Error(w, `{"message":"forbidden access"}`, http.StatusForbidden)
		return
	}

	bookings, err := h.store.BookingsByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch bookings for %s: %v", email, err)
		http.Error(w, `{"message":"failed to fetch bookings"}`, http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

// Get handles GET /bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	booking, err := h.store.BookingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"message":"booking not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch booking %s: %v", id, err)
		http.Error(w, `{"message":"failed to fetch booking"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

// Create handles POST /bookings. A duplicate (email, date, treatment) is
// a soft rejection: 200 with acknowledged:false and no new record.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, `{"message":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	id, err := h.store.CreateBooking(r.Context(), &booking)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateBooking) {
			message := fmt.Sprintf("You already have an appointment of %s on %s", booking.Treatment, booking.AppointmentDate)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"acknowledged": false,
				"message":      message,
			})
			return
		}
		log.Printf("Failed to create booking: %v", err)
		http.Error(w, `{"message":"failed to create booking"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id,
	})
}
