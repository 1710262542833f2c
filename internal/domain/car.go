package domain

import "fmt"

type CarVariant string

const (
	CarVariantEconomy CarVariant = "ECONOMY"
	CarVariantLuxury  CarVariant = "LUXURY"
)

// dailyRates is the fixed price table, one entry per variant.
var dailyRates = map[CarVariant]float64{
	CarVariantEconomy: 50.0,
	CarVariantLuxury:  150.0,
}

// carVariantChoices maps the add-car menu selector to a variant.
var carVariantChoices = map[int]CarVariant{
	1: CarVariantEconomy,
	2: CarVariantLuxury,
}

// ParseCarVariant converts the numeric selector shown by the add-car prompt.
func ParseCarVariant(choice int) (CarVariant, error) {
	v, ok := carVariantChoices[choice]
	if !ok {
		return "", NewInvalidInputError("Invalid car type selected!")
	}
	return v, nil
}

// DailyRate returns the rate for the variant, or 0 for an unknown variant.
func (v CarVariant) DailyRate() float64 {
	return dailyRates[v]
}

// String returns the display name, e.g. "Economy".
func (v CarVariant) String() string {
	switch v {
	case CarVariantEconomy:
		return "Economy"
	case CarVariantLuxury:
		return "Luxury"
	default:
		return string(v)
	}
}

type Car struct {
	ID        string     `json:"id"`
	Model     string     `json:"model"`
	Available bool       `json:"available"`
	Variant   CarVariant `json:"variant"`
}

func NewCar(id, model string, variant CarVariant) *Car {
	return &Car{
		ID:        id,
		Model:     model,
		Available: true,
		Variant:   variant,
	}
}

func (c *Car) DailyRate() float64 {
	return c.Variant.DailyRate()
}

func (c *Car) MarkRented() {
	c.Available = false
}

func (c *Car) MarkReturned() {
	c.Available = true
}

func (c *Car) Describe() string {
	available := "No"
	if c.Available {
		available = "Yes"
	}
	return fmt.Sprintf("[%s] Car ID: %s, Model: %s, Available: %s, Daily Rate: $%.2f",
		string(c.Variant), c.ID, c.Model, available, c.DailyRate())
}
