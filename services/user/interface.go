package user

import (
	"context"
	"errors"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrUserNotFound is returned when no user matches the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when signing up an email twice.
	ErrUserExists = errors.New("user already exists")
	// ErrEmailRequired is returned when a user has no email.
	ErrEmailRequired = errors.New("user email is required")
)

type UserService interface {
	// Registration
	CreateUser(ctx context.Context, user models.User) (*models.InsertResult, error)

	// Authentication
	IssueToken(ctx context.Context, email string) (string, error)

	// Roles
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error)

	// Admin / Utility
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.JWTManager
}
