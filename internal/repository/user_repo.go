// Package repository provides in-memory, id-keyed collections over the seed
// data. It keeps the interface shape of a database-backed repository so the
// service layer never knows the data is mock.
package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/soireehq/soiree-api/internal/models"
)

var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
	order   []string
}

// NewUserRepository clones the seed slice into an id-keyed arena.
func NewUserRepository(seed []models.User) UserRepository {
	r := &userRepository{
		byID:    make(map[string]models.User, len(seed)),
		byEmail: make(map[string]string, len(seed)),
		order:   make([]string, 0, len(seed)),
	}
	for _, u := range seed {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u.ID
		r.order = append(r.order, u.ID)
	}
	return r
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.byID[id])
	}
	return users, nil
}
