package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Admit runs the admission checks and inserts the booking. The duplicate
// check and insert are not atomic by themselves; the unique booking indexes
// turn a lost race into ErrDuplicateBooking, reported as a conflict.
func (s *DefaultBookingService) Admit(ctx context.Context, req models.Booking) (*models.InsertResult, error) {
	logger := s.logger()
	if err := validate(req); err != nil {
		return nil, err
	}
	key := req.Key()

	if s.Lock != nil {
		release, err := s.Lock.Acquire(ctx, key.String())
		switch {
		case errors.Is(err, ErrAdmissionInProgress):
			logger.Info("Admit: concurrent admission rejected", zap.String("key", key.String()))
			return nil, newDuplicateBookingError(req.AppointmentDate)
		case err != nil:
			logger.Warn("Admit: admission lock unavailable, relying on indexes", zap.Error(err))
		default:
			defer release()
		}
	}

	existing, err := s.Repo.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return nil, newDuplicateBookingError(req.AppointmentDate)
	}

	if req.Slot != "" && s.Availability != nil {
		option, err := s.Availability.Option(ctx, req.AppointmentDate, req.Treatment)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot availability: %w", err)
		}
		// Unknown treatments are admitted; only known options have a
		// capacity to enforce.
		if option != nil && !containsSlot(option.Slots, req.Slot) {
			return nil, newSlotTakenError(req.Treatment, req.Slot, req.AppointmentDate)
		}
	}

	req.ID = primitive.NilObjectID
	req.Paid = false
	req.TransactionID = ""
	id, err := s.Repo.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return nil, s.classifyDuplicate(ctx, req)
		}
		return nil, err
	}
	logger.Info("Admit: booking stored",
		zap.String("bookingID", id.Hex()),
		zap.String("treatment", req.Treatment),
		zap.String("date", req.AppointmentDate))

	s.enqueueConfirmation(ctx, req)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// classifyDuplicate tells apart the two unique indexes after a rejected insert.
func (s *DefaultBookingService) classifyDuplicate(ctx context.Context, req models.Booking) error {
	if req.Slot == "" {
		return newDuplicateBookingError(req.AppointmentDate)
	}
	existing, err := s.Repo.FindByKey(ctx, req.Key())
	if err == nil && len(existing) == 0 {
		return newSlotTakenError(req.Treatment, req.Slot, req.AppointmentDate)
	}
	return newDuplicateBookingError(req.AppointmentDate)
}

func (s *DefaultBookingService) enqueueConfirmation(ctx context.Context, b models.Booking) {
	if s.Queue == nil {
		return
	}
	payload := models.BookingConfirmationPayload{
		BookingID:       b.ID.Hex(),
		Email:           b.Email,
		Patient:         b.Patient,
		Treatment:       b.Treatment,
		AppointmentDate: b.AppointmentDate,
		Slot:            b.Slot,
	}
	if err := s.Queue.EnqueueBookingConfirmation(ctx, payload); err != nil {
		s.logger().Warn("Admit: failed to enqueue confirmation",
			zap.String("bookingID", payload.BookingID), zap.Error(err))
	}
}

func validate(b models.Booking) error {
	switch {
	case strings.TrimSpace(b.AppointmentDate) == "":
		return &ValidationError{Field: "appointmentDate"}
	case strings.TrimSpace(b.Email) == "":
		return &ValidationError{Field: "email"}
	case strings.TrimSpace(b.Treatment) == "":
		return &ValidationError{Field: "treatment"}
	}
	return nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
