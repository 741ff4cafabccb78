package services

import (
	"context"
	"errors"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{collection: db.Collection("users")}
}

// CreateUser inserts a user unless the email is already registered.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (string, error) {
	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	user.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *UserService) UserList(ctx context.Context) ([]models.User, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUserByEmail fetches one user; ErrNotFound when the email is unknown.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// IsAdmin reports whether the email belongs to an admin. An unknown
// email is a plain non-admin, never an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.Role == models.RoleAdmin, nil
}

// PromoteAdmin sets role=admin on an existing user. No upsert: a missing
// id fails with ErrNotFound instead of creating a bogus document.
func (s *UserService) PromoteAdmin(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
