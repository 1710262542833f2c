package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"carrental-desk/internal/domain"
	"carrental-desk/internal/logger"
	"carrental-desk/internal/service"
	"carrental-desk/internal/utils"
)

const (
	menuFirst = 1
	menuExit  = 8
)

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

// Desk drives the interactive rental desk: it shows the menu, reads one
// choice at a time and runs the matching transaction against the service.
type Desk struct {
	svc   service.DeskService
	con   *console
	title string
	log   *slog.Logger
	menu  []menuItem
}

type Options struct {
	Title     string
	SessionID string
}

func NewDesk(svc service.DeskService, in io.Reader, out io.Writer, opts Options) *Desk {
	d := &Desk{
		svc:   svc,
		con:   newConsole(in, out),
		title: opts.Title,
		log:   logger.WithSession(opts.SessionID),
	}
	d.menu = []menuItem{
		{"Add New Car", d.addCar},
		{"Add New User", d.addCustomer},
		{"Rent a Car", d.rentCar},
		{"Return a Car", d.returnCar},
		{"View All Cars", d.listCars},
		{"View All Users", d.listCustomers},
		{"View All Rentals", d.listRentals},
	}
	return d
}

func (d *Desk) showMenu() {
	d.con.printf("-----------%s--------\n", d.title)
	for i, item := range d.menu {
		d.con.printf("%d. %s\n", i+menuFirst, item.label)
	}
	d.con.printf("%d. Exit\n", menuExit)
}

// Run loops until the operator picks Exit or the input ends. Rejected
// transactions are reported and the loop continues; any other error is fatal
// and returned.
func (d *Desk) Run(ctx context.Context) error {
	d.log.Info("Desk session started")
	d.con.println("Welcome to the Car Rental Service Simulator!")

	for {
		if d.con.err != nil {
			return fmt.Errorf("failed to write to terminal: %w", d.con.err)
		}

		d.showMenu()
		line, err := d.con.prompt(fmt.Sprintf("Enter your choice (%d-%d): ", menuFirst, menuExit))
		if errors.Is(err, io.EOF) {
			d.log.Info("Input closed, ending desk session")
			d.farewell()
			return d.con.err
		}
		if de, ok := domain.AsDeskError(err); ok {
			d.con.println(de.Message + "\n")
			continue
		}
		if err != nil {
			return err
		}

		choice, numeric, err := utils.ParseChoice(line, menuFirst, menuExit)
		if !numeric {
			d.con.println("Invalid input! Please enter a number.\n")
			continue
		}
		if err != nil {
			d.con.printf("Invalid choice! Please enter a number between %d-%d.\n\n", menuFirst, menuExit)
			continue
		}
		if choice == menuExit {
			d.log.Info("Desk session ended by operator")
			d.farewell()
			return d.con.err
		}

		item := d.menu[choice-menuFirst]
		d.log.Debug("Dispatching menu choice", "choice", choice, "label", item.label)
		err = item.action(ctx)
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			d.log.Info("Input closed mid-transaction, ending desk session", "label", item.label)
			d.farewell()
			return d.con.err
		}
		if de, ok := domain.AsDeskError(err); ok {
			d.con.println(de.Message + "\n")
			continue
		}
		d.log.Error("Desk transaction failed", "label", item.label, "error", err)
		return err
	}
}

func (d *Desk) farewell() {
	d.con.println("Thank you for using Car Rental Service!")
	d.con.println("Goodbye!")
}

// readNumber prompts for a whole number. A non-numeric answer becomes an
// invalid input error so the transaction aborts back to the menu.
func (d *Desk) readNumber(label string) (int, error) {
	line, err := d.con.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := utils.ParseInt(line)
	if err != nil {
		d.log.Debug("Rejected numeric input", "prompt", label, "error", err)
		return 0, domain.NewInvalidInputError("Invalid input! Please enter a number.")
	}
	return n, nil
}

// readDay prompts for a day number.
func (d *Desk) readDay(label string) (int, error) {
	line, err := d.con.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := utils.ParseDay(line)
	if err != nil {
		d.log.Debug("Rejected day input", "prompt", label, "error", err)
		return 0, domain.NewInvalidInputError("Invalid input! Please enter a number.")
	}
	return n, nil
}

// readToken prompts for a single-word answer such as an id.
func (d *Desk) readToken(label string) (string, error) {
	line, err := d.con.prompt(label)
	if err != nil {
		return "", err
	}
	return utils.FirstToken(line), nil
}
