package auth

import (
	"context"
	"fmt"

	"github.com/launchdeck/launchdeck/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, req domain.LoginRequest) (string, *domain.User, error)
}

type userStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type jwtSigner interface {
	Sign(userID, role string) (string, error)
}

type service struct {
	users userStore
	jwt   jwtSigner
}

func NewService(users userStore, jwt jwtSigner) Service {
	return &service{users: users, jwt: jwt}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, *domain.User, error) {
	if s.jwt == nil {
		// Startup tolerates missing signing keys; login cannot.
		return "", nil, fmt.Errorf("token signing unavailable: %w", domain.ErrUnauthorized)
	}
	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		// Same failure for unknown user and wrong password.
		return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	if u.Enable != 1 {
		return "", nil, fmt.Errorf("account disabled: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	bearer, err := s.jwt.Sign(u.UserID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return bearer, u, nil
}
