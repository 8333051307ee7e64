// Package store holds the client-side domain state containers. Each store
// owns one slice of state, is injected with the services it calls, and is
// safe for concurrent readers while an action is in flight. Every action
// returns its error and mirrors it into the store's Err field so reactive
// consumers and imperative callers see the same failure.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/soireehq/soiree-api/internal/mocks"
	"github.com/soireehq/soiree-api/internal/models"
	"github.com/soireehq/soiree-api/internal/service"
	"github.com/soireehq/soiree-api/pkg/latency"
)

// UserPatch is a partial profile update; nil fields are left unchanged.
type UserPatch struct {
	Name           *string
	Email          *string
	Avatar         *string
	Bio            *string
	Preferences    *models.Preferences
	PaymentMethods []models.PaymentMethod
}

type AuthStore struct {
	mu    sync.RWMutex
	svc   service.AuthService
	delay time.Duration

	user            *models.User
	isAuthenticated bool
	isLoading       bool
	err             error
}

func NewAuthStore(svc service.AuthService, delay time.Duration) *AuthStore {
	return &AuthStore{svc: svc, delay: delay}
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.isLoading = true
	s.err = nil
	s.mu.Unlock()
}

// Login resolves the account through the login procedure. On failure the
// store stays unauthenticated and records the error; prior session state is
// not touched.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.begin()

	user, _, err := s.svc.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.err = err
		return err
	}

	s.user = user
	s.isAuthenticated = true
	return nil
}

// LoginWithSocial simulates SSO: any provider signs in the default seed
// account.
func (s *AuthStore) LoginWithSocial(ctx context.Context, provider string) error {
	s.begin()

	if err := latency.Wait(ctx, s.delay); err != nil {
		return s.fail(err)
	}

	user := mocks.CurrentUser

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.user = &user
	s.isAuthenticated = true
	return nil
}

// Signup synthesizes a fresh account and authenticates it immediately.
func (s *AuthStore) Signup(ctx context.Context, name, email, password string) error {
	s.begin()

	if err := latency.Wait(ctx, s.delay); err != nil {
		return s.fail(err)
	}

	user := &models.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Avatar:     mocks.DefaultAvatar,
		Rating:     0,
		IsHost:     false,
		JoinedDate: time.Now().Format("2006-01-02"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.user = user
	s.isAuthenticated = true
	return nil
}

// Logout clears the session locally; no remote call is made.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.isAuthenticated = false
}

// UpdateProfile merges patch into the current user. Without a session it
// only cycles the loading flag.
func (s *AuthStore) UpdateProfile(ctx context.Context, patch UserPatch) error {
	s.begin()

	if err := latency.Wait(ctx, s.delay); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if s.user == nil {
		return nil
	}

	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.Avatar != nil {
		s.user.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		s.user.Bio = *patch.Bio
	}
	if patch.Preferences != nil {
		s.user.Preferences = patch.Preferences
	}
	if patch.PaymentMethods != nil {
		s.user.PaymentMethods = patch.PaymentMethods
	}
	return nil
}

func (s *AuthStore) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.err = err
	return err
}

// User returns a copy of the signed-in account, or nil.
func (s *AuthStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *AuthStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *AuthStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
