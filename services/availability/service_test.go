package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeOptionRepo struct {
	options  []models.AppointmentOption
	pipeline mongo.Pipeline
}

func (f *fakeOptionRepo) GetAll(context.Context) ([]models.AppointmentOption, error) {
	out := make([]models.AppointmentOption, len(f.options))
	copy(out, f.options)
	return out, nil
}

func (f *fakeOptionRepo) GetByName(_ context.Context, name string) (*models.AppointmentOption, error) {
	for _, o := range f.options {
		if o.Name == name {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOptionRepo) GetSpecialties(context.Context) ([]models.Specialty, error) {
	var out []models.Specialty
	for _, o := range f.options {
		out = append(out, models.Specialty{ID: o.ID, Name: o.Name})
	}
	return out, nil
}

func (f *fakeOptionRepo) Aggregate(_ context.Context, p mongo.Pipeline) ([]models.AppointmentOption, error) {
	f.pipeline = p
	return nil, nil
}

func (f *fakeOptionRepo) EnsureIndexes(context.Context) error { return nil }

type fakeBookingRepo struct {
	bookings  []models.Booking
	dateCalls int
	err       error
}

func (f *fakeBookingRepo) FindByKey(context.Context, models.BookingKey) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	f.dateCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByEmail(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(context.Context, primitive.ObjectID) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Create(context.Context, *models.Booking) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (f *fakeBookingRepo) MarkPaid(context.Context, primitive.ObjectID, string) error { return nil }

func (f *fakeBookingRepo) EnsureIndexes(context.Context) error { return nil }

func TestServiceAvailable(t *testing.T) {
	opts := &fakeOptionRepo{options: []models.AppointmentOption{braces()}}
	books := &fakeBookingRepo{bookings: []models.Booking{
		{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "9AM"},
	}}
	svc := &DefaultAvailabilityService{Options: opts, Bookings: books}

	got, err := svc.Available(context.Background(), "2023-01-01")
	if err != nil {
		t.Fatalf("Available: %v", err)
	}
	if want := []string{"10AM"}; !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("slots = %v, want %v", got[0].Slots, want)
	}
}

func TestServiceAvailableWithoutDateSkipsBookings(t *testing.T) {
	opts := &fakeOptionRepo{options: []models.AppointmentOption{braces()}}
	books := &fakeBookingRepo{}
	svc := &DefaultAvailabilityService{Options: opts, Bookings: books}

	got, err := svc.Available(context.Background(), "")
	if err != nil {
		t.Fatalf("Available: %v", err)
	}
	if books.dateCalls != 0 {
		t.Fatalf("expected no booking lookup, got %d", books.dateCalls)
	}
	if len(got[0].Slots) != 2 {
		t.Fatalf("expected full slot list, got %v", got[0].Slots)
	}
}

func TestServiceAvailablePropagatesStoreErrors(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Options:  &fakeOptionRepo{options: []models.AppointmentOption{braces()}},
		Bookings: &fakeBookingRepo{err: errors.New("connection reset")},
	}
	if _, err := svc.Available(context.Background(), "2023-01-01"); err == nil {
		t.Fatal("expected error")
	}
}

func TestServiceAvailableAggregatedUsesPipeline(t *testing.T) {
	opts := &fakeOptionRepo{}
	svc := &DefaultAvailabilityService{Options: opts, Bookings: &fakeBookingRepo{}}

	if _, err := svc.AvailableAggregated(context.Background(), "2023-01-01"); err != nil {
		t.Fatalf("AvailableAggregated: %v", err)
	}
	if !reflect.DeepEqual(opts.pipeline, Pipeline("2023-01-01")) {
		t.Fatal("expected the availability pipeline to be executed")
	}
}

func TestServiceOption(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Options: &fakeOptionRepo{options: []models.AppointmentOption{braces()}},
		Bookings: &fakeBookingRepo{bookings: []models.Booking{
			{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "10AM"},
		}},
	}

	got, err := svc.Option(context.Background(), "2023-01-01", "Braces")
	if err != nil {
		t.Fatalf("Option: %v", err)
	}
	if want := []string{"9AM"}; !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("slots = %v, want %v", got.Slots, want)
	}

	missing, err := svc.Option(context.Background(), "2023-01-01", "Unknown")
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil) for unknown treatment, got (%v, %v)", missing, err)
	}
}
