package service

import (
	"context"
	"errors"

	"github.com/frenzyhq/frenzy-backend/internal/interfaces"
	"github.com/frenzyhq/frenzy-backend/internal/model"
	"github.com/frenzyhq/frenzy-backend/internal/repository"
	"github.com/frenzyhq/frenzy-backend/internal/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so responses never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
)

const bcryptCost = 12

// AuthService orchestrates registration and login: lookup, hashing, and
// token issuance.
type AuthService struct {
	userRepo interfaces.UserRepository
	issuer   *token.Issuer
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo interfaces.UserRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// Register creates a new user account and returns it with a signed session
// token. The returned user carries the password hash internally; handlers
// must never serialize it.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	_, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.CreateUser(ctx, email, string(hashedPassword))
	if err != nil {
		// A concurrent registration can slip past the lookup; the unique
		// constraint is the authority.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	tokenString, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, tokenString, nil
}

// Login authenticates a user and returns the user with a signed session
// token. Unknown email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tokenString, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, tokenString, nil
}
