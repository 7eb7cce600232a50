package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the authorization level of a user.
type Role string

const (
	// RoleRegular is the default; it is stored as an absent role field.
	RoleRegular Role = "regular"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored role value onto a Role. Anything other than
// "admin" is a regular user.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleRegular
}

// User represents a portal user.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	// RoleValue is the raw stored field; read it through Role().
	RoleValue string `bson:"role,omitempty" json:"role,omitempty"`
}

// Role returns the user's role, defaulting to RoleRegular.
func (u User) Role() Role {
	return ParseRole(u.RoleValue)
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role() == RoleAdmin
}
