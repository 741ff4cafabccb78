package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/middleware"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"github.com/doctorsportal/doctors-portal-gobackend/internal/services"
	"github.com/gorilla/mux"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	UserList(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteAdmin(ctx context.Context, id string) error
}

type UserHandler struct {
	store        UserStore
	accessSecret string
}

func NewUserHandler(store UserStore, accessSecret string) *UserHandler {
	return &UserHandler{store: store, accessSecret: accessSecret}
}

// GetUsers handles GET /users (admin only).
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.UserList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		http.Error(w, `{"message":"failed to fetch users"}`, http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// CreateUser handles POST /users. Idempotent by email: a known email
// short-circuits with a message and no error.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"message":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	id, err := h.store.CreateUser(r.Context(), &user)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "This email is already in use"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		http.Error(w, `{"message":"failed to create user"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// IsAdmin handles GET /users/admin/{email}
func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	isAdmin, err := h.store.IsAdmin(r.Context(), email)
	if err != nil {
		log.Printf("Failed to check admin status for %s: %v", email, err)
		http.Error(w, `{"message":"failed to check admin status"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"isAdmin": isAdmin})
}

// PromoteAdmin handles PUT /users/admin/{id} (admin only). A missing id
// is 404, never an upserted document.
func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.PromoteAdmin(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"message":"user not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to promote user %s: %v", id, err)
		http.Error(w, `{"message":"failed to promote user"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged":  true,
		"modifiedCount": 1,
	})
}

// IssueToken handles GET /jwt?email=. The email must belong to a known
// user; the token carries only that email claim. No password is checked
// here, the companion front end gates entry to this endpoint.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	_, err := h.store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"accessToken": ""})
			return
		}
		log.Printf("Failed to look up user %s: %v", email, err)
		http.Error(w, `{"message":"failed to issue token"}`, http.StatusInternalServerError)
		return
	}

	token, err := middleware.SignToken(h.accessSecret, email)
	if err != nil {
		log.Printf("Failed to sign token for %s: %v", email, err)
		http.Error(w, `{"message":"failed to issue token"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"accessToken": token})
}
