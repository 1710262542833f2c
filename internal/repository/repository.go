package repository

import (
	"context"
	"errors"

	"carrental-desk/internal/domain"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// Lists return records in insertion order. Get methods return copies; callers
// persist changes with Update.

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	List(ctx context.Context) ([]domain.Car, error)
	ListAvailable(ctx context.Context) ([]domain.Car, error)
	Count(ctx context.Context) (int, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int, error)
}

type RentalRepository interface {
	// NextID reserves the next sequential rental id. Reserved ids are never reused.
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListActive(ctx context.Context) ([]domain.Rental, error)
	// FindActive returns the first active rental, in insertion order, whose id
	// or car id equals key.
	FindActive(ctx context.Context, key string) (*domain.Rental, error)
}
