package memory

import (
	"context"
	"fmt"

	"carrental-desk/internal/domain"
	"carrental-desk/internal/logger"
	"carrental-desk/internal/repository"
)

type carRepository struct {
	cars []domain.Car
}

func NewCarRepository() repository.CarRepository {
	return &carRepository{}
}

func (r *carRepository) indexOf(id string) int {
	for i := range r.cars {
		if r.cars[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	logger.StoreCall("insert", "cars", "id", car.ID)
	if r.indexOf(car.ID) >= 0 {
		err := fmt.Errorf("car %q: %w", car.ID, repository.ErrDuplicateKey)
		logger.StoreResult("insert", "cars", 0, err)
		return err
	}
	r.cars = append(r.cars, *car)
	logger.StoreResult("insert", "cars", 1, nil)
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("car %q: %w", id, repository.ErrRecordNotFound)
	}
	c := r.cars[i]
	return &c, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	logger.StoreCall("update", "cars", "id", car.ID, "available", car.Available)
	i := r.indexOf(car.ID)
	if i < 0 {
		err := fmt.Errorf("car %q: %w", car.ID, repository.ErrRecordNotFound)
		logger.StoreResult("update", "cars", 0, err)
		return err
	}
	r.cars[i] = *car
	logger.StoreResult("update", "cars", 1, nil)
	return nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	out := make([]domain.Car, len(r.cars))
	copy(out, r.cars)
	return out, nil
}

func (r *carRepository) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	var out []domain.Car
	for _, c := range r.cars {
		if c.Available {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *carRepository) Count(ctx context.Context) (int, error) {
	return len(r.cars), nil
}
