package cli

import (
	"context"
	"strings"

	"carrental-desk/internal/domain"
	"carrental-desk/internal/service"
)

func (d *Desk) addCar(ctx context.Context) error {
	d.con.println("\n=== Add New Car ===")
	id, err := d.readToken("Enter Car ID: ")
	if err != nil {
		return err
	}
	if err := d.svc.ValidateNewCarID(ctx, id); err != nil {
		return err
	}

	model, err := d.con.prompt("Enter Car Model: ")
	if err != nil {
		return err
	}

	d.con.println("Select Car Type:")
	d.con.printf("1. Economy Car ($%.0f/day)\n", domain.CarVariantEconomy.DailyRate())
	d.con.printf("2. Luxury Car ($%.0f/day)\n", domain.CarVariantLuxury.DailyRate())
	choice, err := d.readNumber("Enter choice (1-2): ")
	if err != nil {
		return err
	}
	variant, err := domain.ParseCarVariant(choice)
	if err != nil {
		return err
	}

	car, err := d.svc.AddCar(ctx, service.AddCarRequest{
		ID:      id,
		Model:   strings.TrimSpace(model),
		Variant: variant,
	})
	if err != nil {
		return err
	}
	d.con.printf("%s car added successfully!\n\n", car.Variant)
	return nil
}

func (d *Desk) listCars(ctx context.Context) error {
	cars, err := d.svc.ListCars(ctx)
	if err != nil {
		return err
	}
	d.con.println("\n=== All Cars in Fleet ===")
	for _, car := range cars {
		d.con.println(car.Describe())
	}
	d.con.println("")
	return nil
}
