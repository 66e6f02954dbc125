package repository

import (
	"context"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
// Update and Delete report zero affected rows for unknown ids instead of failing.
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, customer model.Customer) (model.MutationResult, error)
	Update(ctx context.Context, id int64, customer model.Customer) (model.MutationResult, error)
	Delete(ctx context.Context, id int64) (model.MutationResult, error)
}
