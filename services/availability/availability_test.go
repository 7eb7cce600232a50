package availability

import (
	"reflect"
	"sort"
	"testing"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func braces() models.AppointmentOption {
	return models.AppointmentOption{Name: "Braces", Price: 120, Slots: []string{"9AM", "10AM"}}
}

func TestComputeRemovesBookedSlots(t *testing.T) {
	options := []models.AppointmentOption{braces()}
	bookings := []models.Booking{{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "9AM"}}

	got := Compute("2023-01-01", options, bookings)
	if len(got) != 1 || got[0].Name != "Braces" {
		t.Fatalf("unexpected options: %+v", got)
	}
	if want := []string{"10AM"}; !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("Braces slots = %v, want %v", got[0].Slots, want)
	}
	if got[0].Price != 120 {
		t.Fatalf("price not carried over: %v", got[0].Price)
	}
}

func TestComputeMatchesTreatmentAndDate(t *testing.T) {
	options := []models.AppointmentOption{
		{Name: "Braces", Slots: []string{"8AM", "9AM", "10AM", "11AM"}},
		{Name: "Cleaning", Slots: []string{"8AM", "9AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "11AM"},
		{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "8AM"},
		{Treatment: "Braces", AppointmentDate: "2023-01-02", Slot: "9AM"},
		{Treatment: "Cleaning", AppointmentDate: "2023-01-02", Slot: "8AM"},
		{Treatment: "Whitening", AppointmentDate: "2023-01-01", Slot: "9AM"},
	}

	got := Compute("2023-01-01", options, bookings)
	if want := []string{"9AM", "10AM"}; !reflect.DeepEqual(got[0].Slots, want) {
		t.Errorf("Braces slots = %v, want %v (order preserved)", got[0].Slots, want)
	}
	if want := []string{"8AM", "9AM"}; !reflect.DeepEqual(got[1].Slots, want) {
		t.Errorf("Cleaning slots = %v, want full list", got[1].Slots)
	}
}

func TestComputeEmptyDateMatchesNothing(t *testing.T) {
	options := []models.AppointmentOption{braces()}
	bookings := []models.Booking{
		{Treatment: "Braces", AppointmentDate: "", Slot: "9AM"},
		{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "10AM"},
	}

	got := Compute("", options, bookings)
	if want := []string{"9AM", "10AM"}; !reflect.DeepEqual(got[0].Slots, want) {
		t.Fatalf("slots = %v, want %v", got[0].Slots, want)
	}
}

func TestComputeDoesNotMutateTemplates(t *testing.T) {
	options := []models.AppointmentOption{braces()}
	bookings := []models.Booking{{Treatment: "Braces", AppointmentDate: "2023-01-01", Slot: "9AM"}}

	_ = Compute("2023-01-01", options, bookings)
	if want := []string{"9AM", "10AM"}; !reflect.DeepEqual(options[0].Slots, want) {
		t.Fatalf("template mutated: %v", options[0].Slots)
	}
}

func TestComputeIsSetDifference(t *testing.T) {
	option := models.AppointmentOption{Name: "X", Slots: []string{"a", "b", "c", "d", "e"}}
	cases := [][]string{
		nil,
		{"a"},
		{"a", "a"},
		{"e", "c"},
		{"a", "b", "c", "d", "e"},
		{"z"},
	}
	for _, booked := range cases {
		var bookings []models.Booking
		for _, s := range booked {
			bookings = append(bookings, models.Booking{Treatment: "X", AppointmentDate: "d", Slot: s})
		}
		got := Remaining("d", option, bookings)

		var want []string
		for _, s := range option.Slots {
			if !contains(booked, s) {
				want = append(want, s)
			}
		}
		if !equalSets(got, want) {
			t.Errorf("booked %v: got %v, want %v", booked, got, want)
		}
	}
}

func TestPipelineShape(t *testing.T) {
	p := Pipeline("2023-01-01")
	if len(p) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(p))
	}
	if p[0][0].Key != "$lookup" || p[1][0].Key != "$project" || p[2][0].Key != "$project" {
		t.Fatalf("unexpected stage order: %v", p)
	}

	lookup := p[0][0].Value.(bson.D).Map()
	if lookup["from"] != "bookings" || lookup["localField"] != "name" || lookup["foreignField"] != "treatment" {
		t.Fatalf("unexpected lookup: %v", lookup)
	}
	inner := lookup["pipeline"].(bson.A)[0].(bson.D).Map()["$match"].(bson.D).Map()["$expr"]
	eq := inner.(bson.D).Map()["$eq"].(bson.A)
	if eq[0] != "$appointmentDate" || eq[1] != "2023-01-01" {
		t.Fatalf("unexpected date match: %v", eq)
	}

	final := p[2][0].Value.(bson.D).Map()
	diff := final["slots"].(bson.D).Map()["$setDifference"].(bson.A)
	if diff[0] != "$slots" || diff[1] != "$booked" {
		t.Fatalf("unexpected set difference: %v", diff)
	}
}

func TestPipelineEmptyDateJoinsNothing(t *testing.T) {
	p := Pipeline("")
	lookup := p[0][0].Value.(bson.D).Map()
	expr := lookup["pipeline"].(bson.A)[0].(bson.D).Map()["$match"].(bson.D).Map()["$expr"]
	if expr != false {
		t.Fatalf("expected $expr false for empty date, got %v", expr)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func equalSets(a, b []string) bool {
	a = append([]string(nil), a...)
	b = append([]string(nil), b...)
	sort.Strings(a)
	sort.Strings(b)
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
