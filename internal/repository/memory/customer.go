package memory

import (
	"context"
	"fmt"

	"carrental-desk/internal/domain"
	"carrental-desk/internal/logger"
	"carrental-desk/internal/repository"
)

type customerRepository struct {
	customers []domain.Customer
}

func NewCustomerRepository() repository.CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	logger.StoreCall("insert", "customers", "id", customer.ID)
	if _, err := r.GetByID(ctx, customer.ID); err == nil {
		err := fmt.Errorf("customer %q: %w", customer.ID, repository.ErrDuplicateKey)
		logger.StoreResult("insert", "customers", 0, err)
		return err
	}
	r.customers = append(r.customers, *customer)
	logger.StoreResult("insert", "customers", 1, nil)
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer %q: %w", id, repository.ErrRecordNotFound)
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *customerRepository) Count(ctx context.Context) (int, error) {
	return len(r.customers), nil
}
