package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/services"
)

// PaymentIntents creates payment intents with the external processor.
type PaymentIntents interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type PaymentStore interface {
	RecordPayment(ctx context.Context, payment *models.Payment) (string, error)
}

type PaymentHandler struct {
	store   PaymentStore
	intents PaymentIntents
}

func NewPaymentHandler(store PaymentStore, intents PaymentIntents) *PaymentHandler {
	return &PaymentHandler{store: store, intents: intents}
}

// CreateIntent handles POST /create-payment-intent. Nothing is
// persisted; the client confirms the intent out-of-band and then posts
// the result to /payments.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Price <= 0 {
		http.Error(w, `{"message":"price must be positive"}`, http.StatusBadRequest)
		return
	}

	clientSecret, err := h.intents.CreatePaymentIntent(r.Context(), req.Price)
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		http.Error(w, `{"message":"failed to create payment intent"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}

// Record handles POST /payments: persists the payment and marks the
// referenced booking paid.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, `{"message":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	id, err := h.store.RecordPayment(r.Context(), &payment)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"message":"booking not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to record payment: %v", err)
		http.Error(w, `{"message":"failed to record payment"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id,
	})
}
