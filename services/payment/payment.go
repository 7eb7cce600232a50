package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount    = errors.New("price must be greater than zero")
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrMissingTxID      = errors.New("transaction id is required")
	ErrBookingNotFound  = errors.New("booking not found")
	// ErrNotBookingOwner is returned when the payer does not hold the booking.
	ErrNotBookingOwner = errors.New("booking belongs to another patient")
)

// PaymentService settles bookings through the payment provider.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error)
	RecordPayment(ctx context.Context, payment models.Payment) (*models.InsertResult, error)
}

type DefaultPaymentService struct {
	Gateway  Gateway
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func (s *DefaultPaymentService) CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error) {
	amount := toCents(price)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	secret, err := s.Gateway.CreateIntent(ctx, amount)
	if err != nil {
		return nil, err
	}
	return &models.PaymentIntentResponse{ClientSecret: secret}, nil
}

// RecordPayment stores the payment and marks its booking as paid. The
// booking must exist and belong to payment.Email; nothing is written otherwise.
func (s *DefaultPaymentService) RecordPayment(ctx context.Context, payment models.Payment) (*models.InsertResult, error) {
	bookingID, err := primitive.ObjectIDFromHex(payment.BookingID)
	if err != nil {
		return nil, ErrInvalidBookingID
	}
	payment.TransactionID = strings.TrimSpace(payment.TransactionID)
	if payment.TransactionID == "" {
		return nil, ErrMissingTxID
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID.Hex(), err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if payment.Email == "" || booking.Email != payment.Email {
		return nil, ErrNotBookingOwner
	}
	payment.ID = primitive.NilObjectID

	id, err := s.Payments.Create(ctx, &payment)
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.MarkPaid(ctx, bookingID, payment.TransactionID); err != nil {
		return nil, fmt.Errorf("payment %s recorded but booking not updated: %w", id.Hex(), err)
	}

	if s.Logger != nil {
		s.Logger.Info("Booking paid",
			zap.String("bookingId", payment.BookingID),
			zap.String("transactionId", payment.TransactionID))
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}
