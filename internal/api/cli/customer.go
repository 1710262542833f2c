package cli

import (
	"context"
	"strings"

	"carrental-desk/internal/service"
)

func (d *Desk) addCustomer(ctx context.Context) error {
	d.con.println("\n=== Add New User ===")
	id, err := d.readToken("Enter User ID: ")
	if err != nil {
		return err
	}
	if err := d.svc.ValidateNewCustomerID(ctx, id); err != nil {
		return err
	}

	name, err := d.con.prompt("Enter User Name: ")
	if err != nil {
		return err
	}

	if _, err := d.svc.AddCustomer(ctx, service.AddCustomerRequest{
		ID:   id,
		Name: strings.TrimSpace(name),
	}); err != nil {
		return err
	}
	d.con.println("User added successfully!\n")
	return nil
}

func (d *Desk) listCustomers(ctx context.Context) error {
	customers, err := d.svc.ListCustomers(ctx)
	if err != nil {
		return err
	}
	d.con.println("\n=== All Registered Users ===")
	for _, c := range customers {
		d.con.println(c.Describe())
	}
	d.con.println("")
	return nil
}
