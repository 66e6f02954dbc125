package app

import (
	"context"

	domainErrors "github.com/polkiloo/customersystem/internal/domain/errors"
	"github.com/polkiloo/customersystem/internal/domain/model"
	"github.com/polkiloo/customersystem/internal/domain/repository"
	"github.com/polkiloo/customersystem/internal/usecase"
)

// CustomerSystemFacade is the single entry point the HTTP layer talks to.
type CustomerSystemFacade struct {
	users     *usecase.UserUseCase
	customers *usecase.CustomerUseCase
	health    repository.HealthChecker
}

func NewCustomerSystemFacade(users *usecase.UserUseCase, customers *usecase.CustomerUseCase, health repository.HealthChecker) *CustomerSystemFacade {
	return &CustomerSystemFacade{users: users, customers: customers, health: health}
}

func (f *CustomerSystemFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *CustomerSystemFacade) UsersByName(ctx context.Context, name string) ([]model.User, error) {
	return f.users.ListByName(ctx, name)
}

func (f *CustomerSystemFacade) RegisterUser(ctx context.Context, name, email, password string) (model.MutationResult, error) {
	return f.users.Register(ctx, name, email, password)
}

// Login returns the first user matching the credentials.
func (f *CustomerSystemFacade) Login(ctx context.Context, email, password string) (*model.User, error) {
	matched, err := f.users.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, domainErrors.ErrInvalidCredentials
	}
	return &matched[0], nil
}

func (f *CustomerSystemFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *CustomerSystemFacade) CreateCustomer(ctx context.Context, customer model.Customer) (model.MutationResult, error) {
	return f.customers.Create(ctx, customer)
}

func (f *CustomerSystemFacade) UpdateCustomer(ctx context.Context, id int64, customer model.Customer) (model.MutationResult, error) {
	return f.customers.Update(ctx, id, customer)
}

func (f *CustomerSystemFacade) DeleteCustomer(ctx context.Context, id int64) (model.MutationResult, error) {
	return f.customers.Delete(ctx, id)
}

func (f *CustomerSystemFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
