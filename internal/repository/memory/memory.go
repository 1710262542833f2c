package memory

import (
	"carrental-desk/internal/repository"
)

// Store is the desk's in-memory record set. Collections are append-only
// slices kept in insertion order; nothing is ever deleted. A Store is owned by
// a single desk and is not safe for concurrent use.
type Store struct {
	repository.CarRepository
	repository.CustomerRepository
	repository.RentalRepository
}

func NewStore() *Store {
	return &Store{
		CarRepository:      NewCarRepository(),
		CustomerRepository: NewCustomerRepository(),
		RentalRepository:   NewRentalRepository(),
	}
}
