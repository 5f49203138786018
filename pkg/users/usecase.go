package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// UseCase describes registration, authentication and listing behavior.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (User, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

type LoginResult struct {
	User  User
	Token string
}

type service struct {
	repo   Repository
	hasher PasswordHasher
	tokens TokenGenerator

	// dummyHash is compared against when the email is unknown, so the
	// absent-user path costs as much as a wrong-password check.
	dummyHash string
}

// NewService returns the default implementation of UseCase.
func NewService(repo Repository, hasher PasswordHasher, tokens TokenGenerator) (UseCase, error) {
	dummy, err := hasher.Hash("usersvc-dummy-credential")
	if err != nil {
		return nil, err
	}
	return &service{repo: repo, hasher: hasher, tokens: tokens, dummyHash: dummy}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return User{}, ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return User{}, err
	}

	user := User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      input.IsAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	// The unique constraint on email is the source of truth for duplicates;
	// Create surfaces it as ErrEmailTaken.
	if err := s.repo.Create(ctx, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			// A storage failure is not a credential problem.
			return LoginResult{}, fmt.Errorf("lookup user: %w", err)
		}
		// Burn a comparison anyway so a missing account is not
		// distinguishable from a wrong password by response time.
		s.hasher.Verify(password, s.dummyHash)
		return LoginResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, Token: token}, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}
