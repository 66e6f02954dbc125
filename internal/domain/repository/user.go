package repository

import (
	"context"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	ListByName(ctx context.Context, name string) ([]model.User, error)
	ListByEmail(ctx context.Context, email string) ([]model.User, error)
	Create(ctx context.Context, name, email, passwordHash string) (model.MutationResult, error)
}
