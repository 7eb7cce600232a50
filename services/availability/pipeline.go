package availability

import (
	"doctorsportal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pipeline builds the aggregation over the appointment options collection
// that left-joins the bookings of date on treatment name and projects
// slots minus the booked slots. Order of the resulting slots is not
// guaranteed by $setDifference.
func Pipeline(date string) mongo.Pipeline {
	lookup := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: database.BookingsCollection},
		{Key: "localField", Value: "name"},
		{Key: "foreignField", Value: "treatment"},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: dateMatch(date)}}}},
		}},
		{Key: "as", Value: "booked"},
	}}}

	bookedSlots := bson.D{{Key: "$project", Value: bson.D{
		{Key: "name", Value: 1},
		{Key: "price", Value: 1},
		{Key: "slots", Value: 1},
		{Key: "booked", Value: bson.D{
			{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$booked"},
				{Key: "as", Value: "book"},
				{Key: "in", Value: "$$book.slot"},
			}},
		}},
	}}}

	remaining := bson.D{{Key: "$project", Value: bson.D{
		{Key: "name", Value: 1},
		{Key: "price", Value: 1},
		{Key: "slots", Value: bson.D{
			{Key: "$setDifference", Value: bson.A{"$slots", "$booked"}},
		}},
	}}}

	return mongo.Pipeline{lookup, bookedSlots, remaining}
}

// dateMatch is the join condition on the booking date. An empty date joins
// nothing, like Compute.
func dateMatch(date string) interface{} {
	if date == "" {
		return false
	}
	return bson.D{{Key: "$eq", Value: bson.A{"$appointmentDate", date}}}
}
