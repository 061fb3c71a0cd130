package test

import (
	"context"
	"sync"
	"time"

	"github.com/frenzyhq/frenzy-backend/internal/interfaces"
	"github.com/frenzyhq/frenzy-backend/internal/model"
	"github.com/frenzyhq/frenzy-backend/internal/repository"
	"github.com/google/uuid"
)

// MockUserRepository implements interfaces.UserRepository in memory
type MockUserRepository struct {
	mu    sync.Mutex
	users map[string]*model.User
}

// Verify that MockUserRepository implements UserRepository interface
var _ interfaces.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*model.User),
	}
}

// CreateUser mocks creating a new user
func (r *MockUserRepository) CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[email]; exists {
		return nil, repository.ErrDuplicateEmail
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: passwordHash,
		Created:  time.Now(),
	}
	r.users[email] = user
	return user, nil
}

// GetUserByEmail mocks retrieving a user by email
func (r *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[email]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

// UserCount reports how many users have been created, for conflict tests.
func (r *MockUserRepository) UserCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
