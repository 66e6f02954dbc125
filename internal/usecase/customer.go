package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/customersystem/internal/domain/errors"
	"github.com/polkiloo/customersystem/internal/domain/model"
	"github.com/polkiloo/customersystem/internal/domain/repository"
)

// CustomerUseCase exposes customer CRUD.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List returns all customers.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

// Create inserts a customer.
func (u *CustomerUseCase) Create(ctx context.Context, customer model.Customer) (model.MutationResult, error) {
	customer, err := normalizeCustomer(customer)
	if err != nil {
		return model.MutationResult{}, err
	}
	return u.customers.Create(ctx, customer)
}

// Update replaces every mutable field of the customer with id.
// Unknown ids yield zero affected rows rather than an error.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, customer model.Customer) (model.MutationResult, error) {
	customer, err := normalizeCustomer(customer)
	if err != nil {
		return model.MutationResult{}, err
	}
	return u.customers.Update(ctx, id, customer)
}

// Delete removes the customer with id.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) (model.MutationResult, error) {
	return u.customers.Delete(ctx, id)
}

func normalizeCustomer(c model.Customer) (model.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.ProfilePictureURL = strings.TrimSpace(c.ProfilePictureURL)

	if c.Name == "" || c.Email == "" {
		return model.Customer{}, domainErrors.ErrInvalidInput
	}
	return c, nil
}
