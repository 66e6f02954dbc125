package test

import (
	"context"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	UsersFn       func(context.Context) ([]model.User, error)
	UsersByNameFn func(context.Context, string) ([]model.User, error)
	RegisterFn    func(context.Context, string, string, string) (model.MutationResult, error)
	LoginFn       func(context.Context, string, string) (*model.User, error)
}

// Users returns configured users or a single default user.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Name: "alice", Email: "alice@example.com", PasswordHash: "hash:secret"}}, nil
}

// UsersByName returns configured users or an empty result.
func (s UserFacadeStub) UsersByName(ctx context.Context, name string) ([]model.User, error) {
	if s.UsersByNameFn != nil {
		return s.UsersByNameFn(ctx, name)
	}
	return []model.User{}, nil
}

// RegisterUser returns configured result or a default insert.
func (s UserFacadeStub) RegisterUser(ctx context.Context, name, email, password string) (model.MutationResult, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return model.MutationResult{InsertID: 1, RowsAffected: 1}, nil
}

// Login returns configured user or a default one.
func (s UserFacadeStub) Login(ctx context.Context, email, password string) (*model.User, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Name: "alice", Email: email, PasswordHash: "hash:" + password}, nil
}

// CustomerFacadeStub provides controllable behaviour for customer endpoints.
type CustomerFacadeStub struct {
	CustomersFn func(context.Context) ([]model.Customer, error)
	CreateFn    func(context.Context, model.Customer) (model.MutationResult, error)
	UpdateFn    func(context.Context, int64, model.Customer) (model.MutationResult, error)
	DeleteFn    func(context.Context, int64) (model.MutationResult, error)
}

// Customers returns configured customers or an empty list.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{}, nil
}

// CreateCustomer returns configured result or a default insert.
func (s CustomerFacadeStub) CreateCustomer(ctx context.Context, c model.Customer) (model.MutationResult, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, c)
	}
	return model.MutationResult{InsertID: 1, RowsAffected: 1}, nil
}

// UpdateCustomer returns configured result or a single affected row.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id int64, c model.Customer) (model.MutationResult, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, c)
	}
	return model.MutationResult{RowsAffected: 1}, nil
}

// DeleteCustomer returns configured result or a single affected row.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id int64) (model.MutationResult, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return model.MutationResult{RowsAffected: 1}, nil
}

// HealthFacadeStub reports configured ping result.
type HealthFacadeStub struct {
	PingErr error
}

// Ping returns the configured error.
func (s HealthFacadeStub) Ping(context.Context) error {
	return s.PingErr
}

// CustomerSystemFacadeStub aggregates facade dependencies for HTTP layer tests.
type CustomerSystemFacadeStub struct {
	UserFacadeStub
	CustomerFacadeStub
	HealthFacadeStub
}
