package service

import (
	"context"

	"carrental-desk/internal/domain"
)

// DeskService is the rental desk's transaction surface. Every method either
// applies its single change or returns a *domain.DeskError and leaves the
// records untouched.
type DeskService interface {
	ValidateNewCarID(ctx context.Context, id string) error
	AddCar(ctx context.Context, req AddCarRequest) (*domain.Car, error)
	ValidateNewCustomerID(ctx context.Context, id string) error
	AddCustomer(ctx context.Context, req AddCustomerRequest) (*domain.Customer, error)

	AvailableCars(ctx context.Context) ([]domain.Car, error)
	RentCar(ctx context.Context, req RentCarRequest) (*domain.Rental, error)
	ActiveRentals(ctx context.Context) ([]domain.RentalDetails, error)
	ReturnCar(ctx context.Context, req ReturnCarRequest) (*domain.RentalDetails, error)
	GetRental(ctx context.Context, id string) (*domain.RentalDetails, error)

	ListCars(ctx context.Context) ([]domain.Car, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListRentals(ctx context.Context) ([]domain.RentalDetails, error)
}
