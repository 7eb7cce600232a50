package models

// BookingConfirmationPayload is the queued task body for an admitted booking.
type BookingConfirmationPayload struct {
	BookingID       string `json:"bookingId"`
	Email           string `json:"email"`
	Patient         string `json:"patient,omitempty"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot,omitempty"`
}
