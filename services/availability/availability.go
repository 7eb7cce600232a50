// Package availability computes the open slots of each treatment on a date.
//
// Two forms are provided and must agree on the set of remaining slots per
// treatment: Compute works on documents already loaded in memory, Pipeline
// builds the equivalent MongoDB aggregation.
package availability

import "doctorsportal/models"

// Compute returns a copy of options where each option's slots exclude the
// slots booked for that treatment on date. Remaining slots keep their
// template order. An empty date matches no bookings.
func Compute(date string, options []models.AppointmentOption, bookings []models.Booking) []models.AppointmentOption {
	booked := bookedSlots(date, bookings)

	result := make([]models.AppointmentOption, 0, len(options))
	for _, option := range options {
		taken := booked[option.Name]
		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, ok := taken[slot]; !ok {
				remaining = append(remaining, slot)
			}
		}
		option.Slots = remaining
		result = append(result, option)
	}
	return result
}

// Remaining returns the open slots of a single option on date.
func Remaining(date string, option models.AppointmentOption, bookings []models.Booking) []string {
	return Compute(date, []models.AppointmentOption{option}, bookings)[0].Slots
}

// bookedSlots indexes the slots taken on date by treatment name.
func bookedSlots(date string, bookings []models.Booking) map[string]map[string]struct{} {
	booked := make(map[string]map[string]struct{})
	if date == "" {
		return booked
	}
	for _, b := range bookings {
		if b.AppointmentDate != date {
			continue
		}
		set, ok := booked[b.Treatment]
		if !ok {
			set = make(map[string]struct{})
			booked[b.Treatment] = set
		}
		set[b.Slot] = struct{}{}
	}
	return booked
}
