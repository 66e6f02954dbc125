package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/customersystem/internal/domain/errors"
	"github.com/polkiloo/customersystem/internal/domain/model"
	"github.com/polkiloo/customersystem/internal/domain/repository"
	pkgAuth "github.com/polkiloo/customersystem/internal/pkg/auth"
)

// UserUseCase handles user registration, lookup and credential checks.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// List returns every registered user.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// ListByName returns users whose name equals name exactly.
func (u *UserUseCase) ListByName(ctx context.Context, name string) ([]model.User, error) {
	return u.users.ListByName(ctx, name)
}

// Register stores a new user with a hashed password.
func (u *UserUseCase) Register(ctx context.Context, name, email, password string) (model.MutationResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return model.MutationResult{}, domainErrors.ErrInvalidInput
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return model.MutationResult{}, err
	}

	return u.users.Create(ctx, name, email, hash)
}

// Verify returns every user registered under email whose password matches.
// An empty result means the credentials are invalid.
func (u *UserUseCase) Verify(ctx context.Context, email, password string) ([]model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return []model.User{}, nil
	}

	candidates, err := u.users.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	matched := make([]model.User, 0, len(candidates))
	for _, usr := range candidates {
		if u.hasher.Compare(usr.PasswordHash, password) == nil {
			matched = append(matched, usr)
		}
	}
	return matched, nil
}
