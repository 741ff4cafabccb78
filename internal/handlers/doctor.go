package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/services"
	"github.com/gorilla/mux"
)

type DoctorStore interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	DoctorList(ctx context.Context) ([]models.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
}

// DoctorHandler handles the admin-only doctor management routes.
type DoctorHandler struct {
	store DoctorStore
}

func NewDoctorHandler(store DoctorStore) *DoctorHandler {
	return &DoctorHandler{store: store}
}

// List handles GET /doctors
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.store.DoctorList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch doctors: %v", err)
		http.Error(w, `{"message":"failed to fetch doctors"}`, http.StatusInternalServerError)
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doctors)
}

// Create handles POST /doctors
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doctor models.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doctor); err != nil {
		http.Error(w, `{"message":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	id, err := h.store.CreateDoctor(r.Context(), &doctor)
	if err != nil {
		log.Printf("Failed to create doctor: %v", err)
		http.Error(w, `{"message":"failed to create doctor"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// Delete handles DELETE /doctors/{id}
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteDoctor(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"message":"doctor not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to delete doctor %s: %v", id, err)
		http.Error(w, `{"message":"failed to delete doctor"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"deletedCount": 1,
	})
}
