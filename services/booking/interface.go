package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/availability"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingService admits and reads bookings.
type BookingService interface {
	// Admit stores the booking unless it conflicts with an existing one.
	// Conflicts are returned as *ConflictError.
	Admit(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	// ListByEmail returns the bookings held by a patient.
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// Get returns a booking by id, or ErrBookingNotFound.
	Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
}

// ConfirmationQueue receives a task for every admitted booking.
type ConfirmationQueue interface {
	EnqueueBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error
}

// DefaultBookingService is the production implementation. Lock and Queue
// are optional.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Availability availability.Service
	Lock         AdmissionLock
	Queue        ConfirmationQueue
	Logger       *zap.Logger
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
