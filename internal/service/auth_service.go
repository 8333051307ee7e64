package service

import (
	"context"
	"errors"
	"time"

	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/repository"
	"github.com/soireehq/soiree-api/pkg/latency"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

// MockToken is issued on every successful login; there is no real session
// backend behind it.
const MockToken = "mock-jwt-token"

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	users repository.UserRepository
	delay time.Duration
}

func NewAuthService(users repository.UserRepository, delay time.Duration) AuthService {
	return &authService{users: users, delay: delay}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := latency.Wait(ctx, s.delay); err != nil {
		return nil, "", err
	}

	// The password is accepted but never verified against anything.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	return user, MockToken, nil
}
