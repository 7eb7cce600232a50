package user

import (
	"context"
	"fmt"
)

// IssueToken signs an access token for a known user. Unknown emails get
// ErrUserNotFound and no token.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrUserNotFound
	}
	if _, err := s.GetUserByEmail(ctx, email); err != nil {
		return "", err
	}
	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
