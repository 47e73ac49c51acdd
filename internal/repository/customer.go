package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/haiminhng/retail-console/internal/apperr"
	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

type CustomerRepository interface {
	WithDB(db memdb.DB) CustomerRepository
	GetCustomer(ctx context.Context, id string) (model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

type customerRepository struct {
	db memdb.DB
}

func NewCustomerRepository(db memdb.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r customerRepository) WithDB(db memdb.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r customerRepository) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	var customer model.Customer
	if err := r.db.View(ctx, func(s *memdb.State) error {
		i := slices.IndexFunc(s.Customers, func(c model.Customer) bool { return c.ID == id })
		if i < 0 {
			return apperr.CustomerNotFoundErr
		}
		customer = s.Customers[i]
		return nil
	}); err != nil {
		return model.Customer{}, err
	}

	return customer, nil
}

func (r customerRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.View(ctx, func(s *memdb.State) error {
		customers = slices.Clone(s.Customers)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}
