package tasks

import (
	"testing"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

func TestBookingConfirmationTaskRoundTrip(t *testing.T) {
	in := models.BookingConfirmationPayload{
		BookingID:       "65f0c0ffee",
		Email:           "a@x.com",
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "Mar 1, 2024",
		Slot:            "08.00 AM - 08.30 AM",
	}
	task, opts, err := NewBookingConfirmationTask(in)
	if err != nil {
		t.Fatalf("NewBookingConfirmationTask: %v", err)
	}
	if task.Type() != TypeBookingConfirmation {
		t.Fatalf("type = %q", task.Type())
	}
	if len(opts) == 0 {
		t.Fatal("expected retry options")
	}

	out, err := ParseBookingConfirmation(task)
	if err != nil {
		t.Fatalf("ParseBookingConfirmation: %v", err)
	}
	if out != in {
		t.Fatalf("payload mismatch: %+v != %+v", out, in)
	}
}

func TestParseBookingConfirmationRejectsGarbage(t *testing.T) {
	if _, err := ParseBookingConfirmation(asynq.NewTask(TypeBookingConfirmation, []byte("{"))); err == nil {
		t.Fatal("expected decode error")
	}
}
