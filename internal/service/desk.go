package service

import (
	"context"
	"errors"
	"fmt"

	"carrental-desk/internal/domain"
	"carrental-desk/internal/logger"
	"carrental-desk/internal/repository"
)

type deskService struct {
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
	validator    *requestValidator
}

func NewDeskService(
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
	maxIDLength int,
) DeskService {
	return &deskService{
		carRepo:      carRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		validator:    newRequestValidator(maxIDLength),
	}
}

// fail logs the exit of method with err and returns err unchanged.
func fail(method string, err error, args ...any) error {
	_, expected := domain.AsDeskError(err)
	logger.ExitMethodWithError(method, err, expected, args...)
	return err
}

func (s *deskService) ValidateNewCarID(ctx context.Context, id string) error {
	if err := s.validator.ID("Car ID", id); err != nil {
		return err
	}
	_, err := s.carRepo.GetByID(ctx, id)
	if err == nil {
		return domain.NewDuplicateError(fmt.Sprintf("Error: Car with ID '%s' already exists!", id))
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up car: %w", err)
	}
	return nil
}

func (s *deskService) AddCar(ctx context.Context, req AddCarRequest) (*domain.Car, error) {
	logger.EnterMethod("deskService.AddCar", "carID", req.ID, "variant", req.Variant)

	if err := s.ValidateNewCarID(ctx, req.ID); err != nil {
		return nil, fail("deskService.AddCar", err, "carID", req.ID)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fail("deskService.AddCar", err, "carID", req.ID)
	}

	car := domain.NewCar(req.ID, req.Model, req.Variant)
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, fail("deskService.AddCar", fmt.Errorf("failed to add car: %w", err), "carID", req.ID)
	}

	logger.Info("Car added to fleet", "carID", car.ID, "model", car.Model, "variant", car.Variant)
	logger.ExitMethod("deskService.AddCar", "carID", car.ID)
	return car, nil
}

func (s *deskService) ValidateNewCustomerID(ctx context.Context, id string) error {
	if err := s.validator.ID("User ID", id); err != nil {
		return err
	}
	_, err := s.customerRepo.GetByID(ctx, id)
	if err == nil {
		return domain.NewDuplicateError(fmt.Sprintf("Error: User with ID '%s' already exists!", id))
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	return nil
}

func (s *deskService) AddCustomer(ctx context.Context, req AddCustomerRequest) (*domain.Customer, error) {
	logger.EnterMethod("deskService.AddCustomer", "customerID", req.ID)

	if err := s.ValidateNewCustomerID(ctx, req.ID); err != nil {
		return nil, fail("deskService.AddCustomer", err, "customerID", req.ID)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fail("deskService.AddCustomer", err, "customerID", req.ID)
	}

	customer := &domain.Customer{ID: req.ID, Name: req.Name}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fail("deskService.AddCustomer", fmt.Errorf("failed to add user: %w", err), "customerID", req.ID)
	}

	logger.Info("Customer registered", "customerID", customer.ID)
	logger.ExitMethod("deskService.AddCustomer", "customerID", customer.ID)
	return customer, nil
}

// AvailableCars checks the rent preconditions in order: a non-empty fleet, at
// least one customer, at least one car not out on rental.
func (s *deskService) AvailableCars(ctx context.Context) ([]domain.Car, error) {
	fleetSize, err := s.carRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cars: %w", err)
	}
	if fleetSize == 0 {
		return nil, domain.NewEmptyError("No cars available in the fleet!")
	}

	customerCount, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if customerCount == 0 {
		return nil, domain.NewEmptyError("No users registered in the system!")
	}

	available, err := s.carRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available cars: %w", err)
	}
	if len(available) == 0 {
		return nil, domain.NewInvalidStateError("No cars currently available for rent!")
	}
	return available, nil
}

func (s *deskService) RentCar(ctx context.Context, req RentCarRequest) (*domain.Rental, error) {
	logger.EnterMethod("deskService.RentCar", "carID", req.CarID, "customerID", req.CustomerID, "startDay", req.StartDay)

	if _, err := s.AvailableCars(ctx); err != nil {
		return nil, fail("deskService.RentCar", err)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fail("deskService.RentCar", err)
	}

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			err = domain.NewNotFoundError(fmt.Sprintf("Error: Car with ID '%s' not found!", req.CarID))
		}
		return nil, fail("deskService.RentCar", err, "carID", req.CarID)
	}
	if !car.Available {
		return nil, fail("deskService.RentCar", domain.NewInvalidStateError("Error: Car is not available for rent!"), "carID", req.CarID)
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			err = domain.NewNotFoundError(fmt.Sprintf("Error: User with ID '%s' not found!", req.CustomerID))
		}
		return nil, fail("deskService.RentCar", err, "customerID", req.CustomerID)
	}

	rentalID, err := s.rentalRepo.NextID(ctx)
	if err != nil {
		return nil, fail("deskService.RentCar", fmt.Errorf("failed to allocate rental id: %w", err))
	}

	car.MarkRented()
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, fail("deskService.RentCar", fmt.Errorf("failed to mark car rented: %w", err), "carID", car.ID)
	}

	rental := domain.NewRental(rentalID, customer.ID, car.ID, req.StartDay)
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		s.restoreCar(ctx, car, true)
		return nil, fail("deskService.RentCar", fmt.Errorf("failed to create rental: %w", err), "rentalID", rentalID)
	}

	logger.Info("Car rented", "rentalID", rental.ID, "carID", car.ID, "customerID", customer.ID, "startDay", rental.StartDay)
	logger.ExitMethod("deskService.RentCar", "rentalID", rental.ID)
	return rental, nil
}

// ActiveRentals checks the return preconditions and lists open rentals with
// the cars they hold.
func (s *deskService) ActiveRentals(ctx context.Context) ([]domain.RentalDetails, error) {
	all, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	if len(all) == 0 {
		return nil, domain.NewEmptyError("No active rentals found!")
	}

	active, err := s.rentalRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rentals: %w", err)
	}
	if len(active) == 0 {
		return nil, domain.NewInvalidStateError("No active rentals to return!")
	}

	return s.resolve(ctx, active)
}

func (s *deskService) ReturnCar(ctx context.Context, req ReturnCarRequest) (*domain.RentalDetails, error) {
	logger.EnterMethod("deskService.ReturnCar", "searchKey", req.SearchKey, "returnDay", req.ReturnDay)

	if _, err := s.ActiveRentals(ctx); err != nil {
		return nil, fail("deskService.ReturnCar", err)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fail("deskService.ReturnCar", err)
	}

	rental, err := s.rentalRepo.FindActive(ctx, req.SearchKey)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			err = domain.NewNotFoundError(fmt.Sprintf("Error: No active rental found with ID '%s'!", req.SearchKey))
		}
		return nil, fail("deskService.ReturnCar", err, "searchKey", req.SearchKey)
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, fail("deskService.ReturnCar", fmt.Errorf("failed to load car %s: %w", rental.CarID, err), "rentalID", rental.ID)
	}

	rental.Close(req.ReturnDay, car)
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, fail("deskService.ReturnCar", fmt.Errorf("failed to mark car returned: %w", err), "carID", car.ID)
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		s.restoreCar(ctx, car, false)
		return nil, fail("deskService.ReturnCar", fmt.Errorf("failed to close rental: %w", err), "rentalID", rental.ID)
	}

	details, err := s.details(ctx, *rental, car)
	if err != nil {
		return nil, fail("deskService.ReturnCar", err, "rentalID", rental.ID)
	}

	logger.Info("Car returned", "rentalID", rental.ID, "carID", car.ID, "returnDay", rental.ReturnDay, "totalBill", rental.TotalBill)
	logger.ExitMethod("deskService.ReturnCar", "rentalID", rental.ID)
	return details, nil
}

// restoreCar writes back the availability car had before a rental write
// failed. The car is always written first, so the store never holds a rental
// whose car disagrees with it.
func (s *deskService) restoreCar(ctx context.Context, car *domain.Car, available bool) {
	car.Available = available
	if err := s.carRepo.Update(ctx, car); err != nil {
		logger.Error("Failed to restore car availability", "carID", car.ID, "available", available, "error", err)
	}
}

func (s *deskService) GetRental(ctx context.Context, id string) (*domain.RentalDetails, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Error: Rental with ID '%s' not found!", id))
		}
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	return s.details(ctx, *rental, nil)
}

func (s *deskService) ListCars(ctx context.Context) ([]domain.Car, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	if len(cars) == 0 {
		return nil, domain.NewEmptyError("No cars in the fleet!")
	}
	return cars, nil
}

func (s *deskService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(customers) == 0 {
		return nil, domain.NewEmptyError("No users registered!")
	}
	return customers, nil
}

func (s *deskService) ListRentals(ctx context.Context) ([]domain.RentalDetails, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	if len(rentals) == 0 {
		return nil, domain.NewEmptyError("No rentals found!")
	}
	return s.resolve(ctx, rentals)
}

func (s *deskService) resolve(ctx context.Context, rentals []domain.Rental) ([]domain.RentalDetails, error) {
	out := make([]domain.RentalDetails, 0, len(rentals))
	for _, rt := range rentals {
		d, err := s.details(ctx, rt, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

// details joins rt with its car and customer. car may be passed when the
// caller already holds the current copy.
func (s *deskService) details(ctx context.Context, rt domain.Rental, car *domain.Car) (*domain.RentalDetails, error) {
	if car == nil {
		var err error
		car, err = s.carRepo.GetByID(ctx, rt.CarID)
		if err != nil {
			return nil, fmt.Errorf("failed to load car %s for rental %s: %w", rt.CarID, rt.ID, err)
		}
	}
	customer, err := s.customerRepo.GetByID(ctx, rt.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s for rental %s: %w", rt.CustomerID, rt.ID, err)
	}
	return &domain.RentalDetails{Rental: rt, Car: *car, Customer: *customer}, nil
}
