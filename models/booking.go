package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar format of Booking.AppointmentDate.
const DateLayout = "2006-01-02"

// Booking is a patient's reservation of one slot of one treatment on one date.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	Patient         string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Slot            string             `bson:"slot,omitempty" json:"slot,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	Paid            bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// BookingKey identifies the (date, email, treatment) triple a patient may
// hold at most once.
type BookingKey struct {
	AppointmentDate string
	Email           string
	Treatment       string
}

// Key returns the duplicate-detection key of the booking.
func (b Booking) Key() BookingKey {
	return BookingKey{
		AppointmentDate: b.AppointmentDate,
		Email:           b.Email,
		Treatment:       b.Treatment,
	}
}

// String renders the key for lock names and log fields.
func (k BookingKey) String() string {
	return k.AppointmentDate + ":" + k.Email + ":" + k.Treatment
}
