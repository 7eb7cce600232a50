package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a treatment template: a price and the ordered list of
// bookable slots. The same template set applies to every date.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// Specialty is the {_id, name} projection of an appointment option.
type Specialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
