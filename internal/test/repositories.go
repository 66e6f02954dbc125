package test

import (
	"context"
	"sort"
	"time"

	"github.com/polkiloo/customersystem/internal/domain/model"
	"github.com/polkiloo/customersystem/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users []model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Next: 1}
}

// List returns stored users in insertion order.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	return s.filter(func(model.User) bool { return true })
}

// ListByName returns users with the exact name.
func (s *UserRepositoryStub) ListByName(ctx context.Context, name string) ([]model.User, error) {
	return s.filter(func(u model.User) bool { return u.Name == name })
}

// ListByEmail returns users with the exact email.
func (s *UserRepositoryStub) ListByEmail(ctx context.Context, email string) ([]model.User, error) {
	return s.filter(func(u model.User) bool { return u.Email == email })
}

// Create appends a user unless the stub has an explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (model.MutationResult, error) {
	if s.Err != nil {
		return model.MutationResult{}, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users = append(s.Users, user)
	return model.MutationResult{InsertID: user.ID, RowsAffected: 1}, nil
}

func (s *UserRepositoryStub) filter(keep func(model.User) bool) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.Users))
	for _, u := range s.Users {
		if keep(u) {
			result = append(result, u)
		}
	}
	return result, nil
}

// CustomerRepositoryStub keeps customers in a map and records the last mutation input.
type CustomerRepositoryStub struct {
	ListFn   func(context.Context) ([]model.Customer, error)
	CreateFn func(context.Context, model.Customer) (model.MutationResult, error)
	UpdateFn func(context.Context, int64, model.Customer) (model.MutationResult, error)
	DeleteFn func(context.Context, int64) (model.MutationResult, error)

	Items map[int64]model.Customer
	Next  int64
	Last  model.Customer
}

// NewCustomerRepositoryStub constructs stub repository with initialized storage.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Items: make(map[int64]model.Customer), Next: 1}
}

// List returns stored customers ordered by id.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	result := make([]model.Customer, 0, len(s.Items))
	for _, c := range s.Items {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Create stores customer under the next id.
func (s *CustomerRepositoryStub) Create(ctx context.Context, c model.Customer) (model.MutationResult, error) {
	s.Last = c
	if s.CreateFn != nil {
		return s.CreateFn(ctx, c)
	}
	if s.Items == nil {
		s.Items = make(map[int64]model.Customer)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	c.ID = s.Next
	c.CreatedAt = time.Now()
	s.Next++
	s.Items[c.ID] = c
	return model.MutationResult{InsertID: c.ID, RowsAffected: 1}, nil
}

// Update replaces stored customer keeping id and creation time.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id int64, c model.Customer) (model.MutationResult, error) {
	s.Last = c
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, c)
	}
	existing, ok := s.Items[id]
	if !ok {
		return model.MutationResult{}, nil
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	s.Items[id] = c
	return model.MutationResult{RowsAffected: 1}, nil
}

// Delete removes stored customer.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) (model.MutationResult, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Items[id]; !ok {
		return model.MutationResult{}, nil
	}
	delete(s.Items, id)
	return model.MutationResult{RowsAffected: 1}, nil
}

// HealthCheckerStub reports the configured error.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

var (
	_ repository.UserRepository     = (*UserRepositoryStub)(nil)
	_ repository.CustomerRepository = (*CustomerRepositoryStub)(nil)
	_ repository.HealthChecker      = HealthCheckerStub{}
)
