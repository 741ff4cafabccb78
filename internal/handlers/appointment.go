package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
)

// AppointmentStore is the slice of the appointment service the handler
// needs.
type AppointmentStore interface {
	OptionsForDate(ctx context.Context, date string) ([]models.AppointmentOption, error)
	OptionsForDateAggregate(ctx context.Context, date string) ([]models.AppointmentOption, error)
	Specialties(ctx context.Context) ([]models.AppointmentSpecialty, error)
}

type AppointmentHandler struct {
	store AppointmentStore
}

func NewAppointmentHandler(store AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{store: store}
}

// Options handles GET /appointmentOptions?date=
func (h *AppointmentHandler) Options(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	opts, err := h.store.OptionsForDate(r.Context(), date)
	if err != nil {
		log.Printf("Failed to fetch appointment options: %v", err)
		http.Error(w, `{"message":"failed to fetch appointment options"}`, http.StatusInternalServerError)
		return
	}
	if opts == nil {
		opts = []models.AppointmentOption{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opts)
}

// OptionsV2 handles GET /v2/appointmentOptions?date= via the store-side
// aggregation.
func (h *AppointmentHandler) OptionsV2(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	opts, err := h.store.OptionsForDateAggregate(r.Context(), date)
	if err != nil {
		log.Printf("Failed to aggregate appointment options: %v", err)
		http.Error(w, `{"message":"failed to fetch appointment options"}`, http.StatusInternalServerError)
		return
	}
	if opts == nil {
		opts = []models.AppointmentOption{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opts)
}

// Specialties handles GET /appointmentSpecialty
func (h *AppointmentHandler) Specialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.store.Specialties(r.Context())
	if err != nil {
		log.Printf("Failed to fetch specialties: %v", err)
		http.Error(w, `{"message":"failed to fetch specialties"}`, http.StatusInternalServerError)
		return
	}
	if specialties == nil {
		specialties = []models.AppointmentSpecialty{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(specialties)
}
