package memory

import (
	"context"
	"fmt"

	"carrental-desk/internal/domain"
	"carrental-desk/internal/logger"
	"carrental-desk/internal/repository"
)

type rentalRepository struct {
	rentals     []domain.Rental
	nextCounter int
}

func NewRentalRepository() repository.RentalRepository {
	return &rentalRepository{nextCounter: 1}
}

func (r *rentalRepository) NextID(ctx context.Context) (string, error) {
	id := domain.FormatRentalID(r.nextCounter)
	r.nextCounter++
	return id, nil
}

func (r *rentalRepository) indexOf(id string) int {
	for i := range r.rentals {
		if r.rentals[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	logger.StoreCall("insert", "rentals", "id", rt.ID, "car_id", rt.CarID, "customer_id", rt.CustomerID)
	if r.indexOf(rt.ID) >= 0 {
		err := fmt.Errorf("rental %q: %w", rt.ID, repository.ErrDuplicateKey)
		logger.StoreResult("insert", "rentals", 0, err)
		return err
	}
	r.rentals = append(r.rentals, *rt)
	logger.StoreResult("insert", "rentals", 1, nil)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("rental %q: %w", id, repository.ErrRecordNotFound)
	}
	rt := r.rentals[i]
	return &rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	logger.StoreCall("update", "rentals", "id", rt.ID, "status", rt.Status)
	i := r.indexOf(rt.ID)
	if i < 0 {
		err := fmt.Errorf("rental %q: %w", rt.ID, repository.ErrRecordNotFound)
		logger.StoreResult("update", "rentals", 0, err)
		return err
	}
	r.rentals[i] = *rt
	logger.StoreResult("update", "rentals", 1, nil)
	return nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	out := make([]domain.Rental, len(r.rentals))
	copy(out, r.rentals)
	return out, nil
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.Rental, error) {
	var out []domain.Rental
	for _, rt := range r.rentals {
		if rt.IsActive() {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *rentalRepository) FindActive(ctx context.Context, key string) (*domain.Rental, error) {
	for _, rt := range r.rentals {
		if rt.IsActive() && (rt.ID == key || rt.CarID == key) {
			return &rt, nil
		}
	}
	return nil, fmt.Errorf("active rental %q: %w", key, repository.ErrRecordNotFound)
}
