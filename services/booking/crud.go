package booking

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *DefaultBookingService) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.FindByEmail(ctx, email)
}

func (s *DefaultBookingService) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
