package payment

import (
	"context"
	"errors"
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGateway struct {
	amounts []int64
	err     error
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64) (string, error) {
	g.amounts = append(g.amounts, amount)
	if g.err != nil {
		return "", g.err
	}
	return "pi_secret", nil
}

type fakePayments struct{ created []models.Payment }

func (p *fakePayments) Create(_ context.Context, pay *models.Payment) (primitive.ObjectID, error) {
	pay.ID = primitive.NewObjectID()
	p.created = append(p.created, *pay)
	return pay.ID, nil
}

// fakeBookings embeds the interface so only GetByID and MarkPaid need an
// implementation.
type fakeBookings struct {
	bookingRepo.BookingRepository
	stored map[primitive.ObjectID]models.Booking
	paid   map[primitive.ObjectID]string
}

func newFakeBookings(bookings ...models.Booking) *fakeBookings {
	b := &fakeBookings{stored: map[primitive.ObjectID]models.Booking{}, paid: map[primitive.ObjectID]string{}}
	for _, bk := range bookings {
		b.stored[bk.ID] = bk
	}
	return b
}

func (b *fakeBookings) GetByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	bk, ok := b.stored[id]
	if !ok {
		return nil, nil
	}
	return &bk, nil
}

func (b *fakeBookings) MarkPaid(_ context.Context, id primitive.ObjectID, tx string) error {
	b.paid[id] = tx
	return nil
}

func TestCreatePaymentIntent(t *testing.T) {
	gw := &fakeGateway{}
	svc := &DefaultPaymentService{Gateway: gw}

	res, err := svc.CreatePaymentIntent(context.Background(), 25.5)
	if err != nil || res.ClientSecret != "pi_secret" {
		t.Fatalf("CreatePaymentIntent: %+v, %v", res, err)
	}
	if len(gw.amounts) != 1 || gw.amounts[0] != 2550 {
		t.Fatalf("amount in cents = %v, want 2550", gw.amounts)
	}

	if _, err := svc.CreatePaymentIntent(context.Background(), 0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	gw.err = errors.New("card declined")
	if _, err := svc.CreatePaymentIntent(context.Background(), 10); err == nil {
		t.Fatal("expected gateway error")
	}
}

func TestRecordPayment(t *testing.T) {
	payments := &fakePayments{}
	bookingID := primitive.NewObjectID()
	bookings := newFakeBookings(models.Booking{ID: bookingID, Email: "a@x.com", Price: 25})
	svc := &DefaultPaymentService{Payments: payments, Bookings: bookings}

	res, err := svc.RecordPayment(context.Background(), models.Payment{
		BookingID:     bookingID.Hex(),
		Email:         "a@x.com",
		Price:         25,
		TransactionID: "pi_123",
	})
	if err != nil || !res.Acknowledged {
		t.Fatalf("RecordPayment: %+v, %v", res, err)
	}
	if bookings.paid[bookingID] != "pi_123" {
		t.Fatalf("booking not marked paid: %v", bookings.paid)
	}
	if len(payments.created) != 1 {
		t.Fatalf("payments recorded = %d", len(payments.created))
	}

	if _, err := svc.RecordPayment(context.Background(), models.Payment{BookingID: "nope", TransactionID: "x"}); !errors.Is(err, ErrInvalidBookingID) {
		t.Fatalf("expected ErrInvalidBookingID, got %v", err)
	}
	if _, err := svc.RecordPayment(context.Background(), models.Payment{BookingID: bookingID.Hex()}); !errors.Is(err, ErrMissingTxID) {
		t.Fatalf("expected ErrMissingTxID, got %v", err)
	}
}

func TestRecordPaymentRejectsUnknownBooking(t *testing.T) {
	payments := &fakePayments{}
	bookings := newFakeBookings()
	svc := &DefaultPaymentService{Payments: payments, Bookings: bookings}

	_, err := svc.RecordPayment(context.Background(), models.Payment{
		BookingID:     primitive.NewObjectID().Hex(),
		Email:         "a@x.com",
		TransactionID: "pi_123",
	})
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if len(payments.created) != 0 || len(bookings.paid) != 0 {
		t.Fatalf("nothing may be written: payments=%d paid=%d", len(payments.created), len(bookings.paid))
	}
}

func TestRecordPaymentRejectsOtherPatientsBooking(t *testing.T) {
	payments := &fakePayments{}
	bookingID := primitive.NewObjectID()
	bookings := newFakeBookings(models.Booking{ID: bookingID, Email: "owner@x.com"})
	svc := &DefaultPaymentService{Payments: payments, Bookings: bookings}

	for _, email := range []string{"intruder@x.com", ""} {
		_, err := svc.RecordPayment(context.Background(), models.Payment{
			BookingID:     bookingID.Hex(),
			Email:         email,
			TransactionID: "pi_123",
		})
		if !errors.Is(err, ErrNotBookingOwner) {
			t.Fatalf("payer %q: expected ErrNotBookingOwner, got %v", email, err)
		}
	}
	if len(payments.created) != 0 || len(bookings.paid) != 0 {
		t.Fatalf("nothing may be written: payments=%d paid=%d", len(payments.created), len(bookings.paid))
	}
}
