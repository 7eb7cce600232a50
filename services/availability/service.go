package availability

import (
	"context"
	"fmt"

	appointmentRepo "doctorsportal/database/repository/appointment"
	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// Service answers availability queries from the store.
type Service interface {
	// Available computes remaining slots in process.
	Available(ctx context.Context, date string) ([]models.AppointmentOption, error)
	// AvailableAggregated computes remaining slots with an aggregation.
	AvailableAggregated(ctx context.Context, date string) ([]models.AppointmentOption, error)
	// Specialties lists the treatment names.
	Specialties(ctx context.Context) ([]models.Specialty, error)
	// Option returns the remaining slots of one treatment, or nil when the
	// treatment does not exist.
	Option(ctx context.Context, date, treatment string) (*models.AppointmentOption, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Options  appointmentRepo.AppointmentOptionRepository
	Bookings bookingRepo.BookingRepository
}

func (s *DefaultAvailabilityService) Available(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	options, err := s.Options.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingsOn(ctx, date)
	if err != nil {
		return nil, err
	}
	return Compute(date, options, bookings), nil
}

func (s *DefaultAvailabilityService) AvailableAggregated(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	return s.Options.Aggregate(ctx, Pipeline(date))
}

func (s *DefaultAvailabilityService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	return s.Options.GetSpecialties(ctx)
}

func (s *DefaultAvailabilityService) Option(ctx context.Context, date, treatment string) (*models.AppointmentOption, error) {
	option, err := s.Options.GetByName(ctx, treatment)
	if err != nil || option == nil {
		return nil, err
	}
	bookings, err := s.bookingsOn(ctx, date)
	if err != nil {
		return nil, err
	}
	option.Slots = Remaining(date, *option, bookings)
	return option, nil
}

func (s *DefaultAvailabilityService) bookingsOn(ctx context.Context, date string) ([]models.Booking, error) {
	if date == "" {
		return nil, nil
	}
	bookings, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %q: %w", date, err)
	}
	return bookings, nil
}
