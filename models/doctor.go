package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a roster entry managed by admins.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Specialty string             `bson:"specialty" json:"specialty" binding:"required"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
