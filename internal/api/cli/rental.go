package cli

import (
	"context"

	"carrental-desk/internal/service"
)

func (d *Desk) rentCar(ctx context.Context) error {
	available, err := d.svc.AvailableCars(ctx)
	if err != nil {
		return err
	}

	d.con.println("\n=== Available Cars ===")
	for _, car := range available {
		d.con.println(car.Describe())
	}

	carID, err := d.readToken("\nEnter Car ID to rent: ")
	if err != nil {
		return err
	}
	customerID, err := d.readToken("Enter User ID: ")
	if err != nil {
		return err
	}
	startDay, err := d.readDay("Enter start date (day number): ")
	if err != nil {
		return err
	}

	rental, err := d.svc.RentCar(ctx, service.RentCarRequest{
		CarID:      carID,
		CustomerID: customerID,
		StartDay:   startDay,
	})
	if err != nil {
		return err
	}
	d.con.println("Car rented successfully!")
	d.con.printf("Rental ID: %s\n\n", rental.ID)
	return nil
}

func (d *Desk) returnCar(ctx context.Context) error {
	active, err := d.svc.ActiveRentals(ctx)
	if err != nil {
		return err
	}

	d.con.println("\n=== Active Rentals ===")
	for _, rt := range active {
		d.con.printf("Rental ID: %s, Car ID: %s, Model: %s\n", rt.Rental.ID, rt.Car.ID, rt.Car.Model)
	}

	key, err := d.readToken("\nEnter Rental ID or Car ID: ")
	if err != nil {
		return err
	}
	returnDay, err := d.readDay("Enter return date (day number): ")
	if err != nil {
		return err
	}

	details, err := d.svc.ReturnCar(ctx, service.ReturnCarRequest{
		SearchKey: key,
		ReturnDay: returnDay,
	})
	if err != nil {
		return err
	}
	d.con.println("Car returned successfully!")
	d.con.printf("\n%s\n\n", details.Describe())
	return nil
}

func (d *Desk) listRentals(ctx context.Context) error {
	rentals, err := d.svc.ListRentals(ctx)
	if err != nil {
		return err
	}
	d.con.println("\n=== All Rentals ===")
	for _, rt := range rentals {
		d.con.printf("\n%s\n\n", rt.Describe())
	}
	return nil
}
