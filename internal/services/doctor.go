package services

import (
	"context"

	"github.com/doctorsportal/doctors-portal-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorService struct {
	collection *mongo.Collection
}

func NewDoctorService(db *mongo.Database) *DoctorService {
	return &DoctorService{collection: db.Collection("doctors")}
}

func (s *DoctorService) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	doctor.ID = primitive.NewObjectID()

	result, err := s.collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *DoctorService) DoctorList(ctx context.Context) ([]models.Doctor, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var doctors []models.Doctor
	if err := cur.All(ctx, &doctors); err != nil {
		return nil, err
	}

	return doctors, nil
}

func (s *DoctorService) DeleteDoctor(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

//
//create
//getlist
//delete
