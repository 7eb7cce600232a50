package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentOptionRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	result := []models.AppointmentOption{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return result, nil
}

func (r *mongoAppointmentOptionRepo) GetByName(ctx context.Context, name string) (*models.AppointmentOption, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var option models.AppointmentOption
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&option); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment option %s: %w", name, err)
	}
	return &option, nil
}

func (r *mongoAppointmentOptionRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specialties: %w", err)
	}
	defer cursor.Close(ctx)

	specialties := []models.Specialty{}
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return specialties, nil
}

func (r *mongoAppointmentOptionRepo) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.AppointmentOption, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	result := []models.AppointmentOption{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode aggregated options: %w", err)
	}
	return result, nil
}
