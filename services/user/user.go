package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateUser stores a new user. New users always start with the regular role.
func (s *DefaultUserService) CreateUser(ctx context.Context, user models.User) (*models.InsertResult, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return nil, ErrEmailRequired
	}
	user.ID = primitive.NilObjectID
	user.RoleValue = ""

	id, err := s.Repo.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// GetUserByEmail returns the user or ErrUserNotFound.
func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// IsAdmin reports whether the email belongs to an admin. Unknown users are
// not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// MakeAdmin grants the admin role, upserting when the id is unknown.
func (s *DefaultUserService) MakeAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	return s.Repo.SetRole(ctx, id, models.RoleAdmin, true)
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}
