package handlers

import (
	"context"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

// UserFacade describes user operations required by handlers.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	UsersByName(ctx context.Context, name string) ([]model.User, error)
	RegisterUser(ctx context.Context, name, email, password string) (model.MutationResult, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, customer model.Customer) (model.MutationResult, error)
	UpdateCustomer(ctx context.Context, id int64, customer model.Customer) (model.MutationResult, error)
	DeleteCustomer(ctx context.Context, id int64) (model.MutationResult, error)
}

// HealthFacade reports whether the backing store is reachable.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	UserFacade
	CustomerFacade
	HealthFacade
}
