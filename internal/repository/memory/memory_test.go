package memory

import (
	"context"
	"errors"
	"testing"

	"carrental-desk/internal/domain"
	"carrental-desk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarRepository(t *testing.T) {
	repo := NewCarRepository()
	ctx := context.Background()

	t.Run("Create keeps insertion order", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, domain.NewCar("C2", "Corolla", domain.CarVariantEconomy)))
		require.NoError(t, repo.Create(ctx, domain.NewCar("C1", "Civic", domain.CarVariantEconomy)))
		require.NoError(t, repo.Create(ctx, domain.NewCar("L1", "S-Class", domain.CarVariantLuxury)))

		cars, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"C2", "C1", "L1"}, []string{cars[0].ID, cars[1].ID, cars[2].ID})
	})

	t.Run("Duplicate id rejected", func(t *testing.T) {
		err := repo.Create(ctx, domain.NewCar("C1", "Other", domain.CarVariantLuxury))
		assert.True(t, errors.Is(err, repository.ErrDuplicateKey))

		n, _ := repo.Count(ctx)
		assert.Equal(t, 3, n)
	})

	t.Run("GetByID returns a copy", func(t *testing.T) {
		car, err := repo.GetByID(ctx, "C1")
		require.NoError(t, err)
		car.MarkRented()

		again, _ := repo.GetByID(ctx, "C1")
		assert.True(t, again.Available)
	})

	t.Run("Update persists availability", func(t *testing.T) {
		car, _ := repo.GetByID(ctx, "C1")
		car.MarkRented()
		require.NoError(t, repo.Update(ctx, car))

		available, err := repo.ListAvailable(ctx)
		assert.NoError(t, err)
		assert.Len(t, available, 2)
		for _, c := range available {
			assert.NotEqual(t, "C1", c.ID)
		}
	})

	t.Run("Missing car", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "X")
		assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

		err = repo.Update(ctx, domain.NewCar("X", "Ghost", domain.CarVariantEconomy))
		assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
	})
}

func TestCustomerRepository(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Customer{ID: "U1", Name: "Alice"}))

	err := repo.Create(ctx, &domain.Customer{ID: "U1", Name: "Bob"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateKey))

	n, _ := repo.Count(ctx)
	assert.Equal(t, 1, n)

	c, err := repo.GetByID(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)

	_, err = repo.GetByID(ctx, "U2")
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestRentalRepository_NextID(t *testing.T) {
	repo := NewRentalRepository()
	ctx := context.Background()

	for _, want := range []string{"R1", "R2", "R3"} {
		id, err := repo.NextID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestRentalRepository_FindActive(t *testing.T) {
	repo := NewRentalRepository()
	ctx := context.Background()

	closed := domain.NewRental("R1", "U1", "C1", 1)
	closed.Close(3, domain.NewCar("C1", "Civic", domain.CarVariantEconomy))
	require.NoError(t, repo.Create(ctx, closed))
	require.NoError(t, repo.Create(ctx, domain.NewRental("R2", "U1", "C1", 5)))
	require.NoError(t, repo.Create(ctx, domain.NewRental("R3", "U2", "R2", 6)))

	t.Run("Car id skips closed rentals", func(t *testing.T) {
		rt, err := repo.FindActive(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, "R2", rt.ID)
	})

	t.Run("First match in insertion order wins", func(t *testing.T) {
		// R2 matches by rental id before R3 matches by car id.
		rt, err := repo.FindActive(ctx, "R2")
		require.NoError(t, err)
		assert.Equal(t, "R2", rt.ID)
	})

	t.Run("Closed rental id is not found", func(t *testing.T) {
		_, err := repo.FindActive(ctx, "R1")
		assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
	})

	t.Run("ListActive", func(t *testing.T) {
		active, err := repo.ListActive(ctx)
		assert.NoError(t, err)
		assert.Len(t, active, 2)

		all, _ := repo.List(ctx)
		assert.Len(t, all, 3)
	})
}

func TestRentalRepository_Update(t *testing.T) {
	repo := NewRentalRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewRental("R1", "U1", "C1", 10)))

	rt, _ := repo.GetByID(ctx, "R1")
	rt.Close(15, domain.NewCar("C1", "Civic", domain.CarVariantEconomy))
	require.NoError(t, repo.Update(ctx, rt))

	stored, err := repo.GetByID(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusClosed, stored.Status)
	assert.Equal(t, 250.0, stored.TotalBill)

	err = repo.Update(ctx, domain.NewRental("R9", "U1", "C1", 1))
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestNewStore(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.CarRepository.Create(ctx, domain.NewCar("C1", "Civic", domain.CarVariantEconomy)))
	require.NoError(t, store.CustomerRepository.Create(ctx, &domain.Customer{ID: "U1", Name: "Alice"}))

	cars, _ := store.CarRepository.Count(ctx)
	customers, _ := store.CustomerRepository.Count(ctx)
	rentals, _ := store.RentalRepository.List(ctx)
	assert.Equal(t, 1, cars)
	assert.Equal(t, 1, customers)
	assert.Empty(t, rentals)
}
