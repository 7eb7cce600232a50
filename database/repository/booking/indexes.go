package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints that make admission safe
// under concurrent requests, plus the lookup indexes of the read paths.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// One booking per patient, treatment and day.
		{
			Keys: bson.D{
				{Key: "appointmentDate", Value: 1},
				{Key: "email", Value: 1},
				{Key: "treatment", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_date_email_treatment"),
		},
		// One booking per slot; bookings without a slot are not constrained.
		{
			Keys: bson.D{
				{Key: "appointmentDate", Value: 1},
				{Key: "treatment", Value: 1},
				{Key: "slot", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_date_treatment_slot").
				SetPartialFilterExpression(bson.M{"slot": bson.M{"$gt": ""}}),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
