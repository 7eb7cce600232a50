package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository stores settled payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs the MongoDB payment repository.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepo{coll: db.Collection(database.PaymentsCollection)}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to record payment: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected payment id type %T", res.InsertedID)
	}
	payment.ID = id
	return id, nil
}
