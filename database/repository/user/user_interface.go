package userRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Create inserts a new user record and returns its identity.
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	// SetRole sets the role of the user with the given id, inserting a stub
	// document when upsert is true and nothing matches.
	SetRole(ctx context.Context, id primitive.ObjectID, role models.Role, upsert bool) (*models.UpdateResult, error)
	EnsureIndexes(ctx context.Context) error
}
