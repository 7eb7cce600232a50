package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateBooking is returned by Create when a unique booking index
// rejects the insert.
var ErrDuplicateBooking = errors.New("booking already exists")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// FindByKey returns bookings matching (appointmentDate, email, treatment).
	FindByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error)
	// FindByDate returns every booking on the given date.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByEmail returns every booking held by the patient.
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID returns the booking, or nil when absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	// Create inserts the booking and returns the store-generated identity.
	Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	// MarkPaid settles the booking with the payment transaction id.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs the MongoDB booking repository.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection(database.BookingsCollection),
	}
}
