package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
	"github.com/VhudzikiIV/PeaQBodyCare/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// AccountService handles registration and login. There is no session or
// token state; login returns the public profile and nothing else.
type AccountService struct {
	repo repository.UserRepository
}

func NewAccountService(repo repository.UserRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
// Returns repository.ErrDuplicateEmail if the email is taken.
func (s *AccountService) Register(ctx context.Context, firstName, lastName, email, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}

	return s.repo.CreateUser(ctx, user)
}

// Login verifies the credentials and returns the public profile.
// Unknown email and wrong password both return ErrInvalidCredentials so
// callers cannot probe which emails are registered.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	user, err := s.repo.UserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	profile := user.Public()
	return &profile, nil
}
