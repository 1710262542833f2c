package domain

import (
	"fmt"
	"strings"
)

type RentalStatus string

const (
	RentalStatusActive RentalStatus = "ACTIVE"
	RentalStatusClosed RentalStatus = "CLOSED"
)

// RentalIDPrefix is prepended to the desk's sequential rental counter.
const RentalIDPrefix = "R"

type Rental struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	CarID      string `json:"car_id"`
	StartDay   int    `json:"start_day"`
	// ReturnDay and TotalBill stay zero until the rental is closed.
	ReturnDay int          `json:"return_day"`
	TotalBill float64      `json:"total_bill"`
	Status    RentalStatus `json:"status"`
}

func FormatRentalID(counter int) string {
	return fmt.Sprintf("%s%d", RentalIDPrefix, counter)
}

func NewRental(id, customerID, carID string, startDay int) *Rental {
	return &Rental{
		ID:         id,
		CustomerID: customerID,
		CarID:      carID,
		StartDay:   startDay,
		Status:     RentalStatusActive,
	}
}

func (r *Rental) IsActive() bool {
	return r.Status == RentalStatusActive
}

// Duration is the number of billed days. It can be zero or negative for
// same-day or backdated returns. Day numbers read at the desk are bounded to
// 32 bits, so the difference cannot overflow.
func (r *Rental) Duration() int {
	return r.ReturnDay - r.StartDay
}

// ComputeBill charges whole days at rate. A non-positive duration leaves the
// bill untouched rather than producing a negative amount.
func (r *Rental) ComputeBill(rate float64) {
	if r.ReturnDay > r.StartDay {
		r.TotalBill = (float64(r.ReturnDay) - float64(r.StartDay)) * rate
	}
}

// Close records the return, bills it and frees the car. It must only be
// called on an active rental with the car it references.
func (r *Rental) Close(returnDay int, car *Car) {
	r.ReturnDay = returnDay
	r.ComputeBill(car.DailyRate())
	r.Status = RentalStatusClosed
	car.MarkReturned()
}

// RentalDetails is a rental resolved against the car and customer it references.
type RentalDetails struct {
	Rental   Rental   `json:"rental"`
	Car      Car      `json:"car"`
	Customer Customer `json:"customer"`
}

func (d *RentalDetails) Describe() string {
	var b strings.Builder
	r := d.Rental
	b.WriteString("=== Rental Details ===\n")
	fmt.Fprintf(&b, "Rental ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Customer: %s (ID: %s)\n", d.Customer.Name, d.Customer.ID)
	fmt.Fprintf(&b, "Car: %s (ID: %s)\n", d.Car.Model, d.Car.ID)
	fmt.Fprintf(&b, "Car Type: %s\n", d.Car.Variant)
	fmt.Fprintf(&b, "Start Date: Day %d\n", r.StartDay)
	if r.IsActive() {
		b.WriteString("Status: Active (Not yet returned)\n")
	} else {
		fmt.Fprintf(&b, "Return Date: Day %d\n", r.ReturnDay)
		fmt.Fprintf(&b, "Rental Duration: %d days\n", r.Duration())
		fmt.Fprintf(&b, "Daily Rate: $%.2f\n", d.Car.DailyRate())
		fmt.Fprintf(&b, "Total Bill: $%.2f\n", r.TotalBill)
	}
	b.WriteString("========================")
	return b.String()
}
