package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"carrental-desk/internal/domain"

	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate    *validator.Validate
	maxIDLength int
}

func newRequestValidator(maxIDLength int) *requestValidator {
	v := validator.New()
	rv := &requestValidator{validate: v, maxIDLength: maxIDLength}
	// deskid: a single word no longer than the configured limit.
	err := v.RegisterValidation("deskid", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) <= rv.maxIDLength && !strings.ContainsFunc(s, unicode.IsSpace)
	})
	if err != nil {
		panic(fmt.Sprintf("register deskid validation: %v", err))
	}
	return rv
}

// Struct validates req and converts the first failure into an invalid input
// error carrying an operator-facing message.
func (rv *requestValidator) Struct(req any) error {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("failed to validate request: %w", err)
	}
	return domain.NewInvalidInputError(rv.message(verrs[0]))
}

// ID validates a single id value with the deskid rules.
func (rv *requestValidator) ID(field, id string) error {
	if err := rv.validate.Var(id, "required,deskid"); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return domain.NewInvalidInputError(rv.messageFor(field, verrs[0].Tag(), verrs[0].Param()))
		}
		return fmt.Errorf("failed to validate %s: %w", field, err)
	}
	return nil
}

func (rv *requestValidator) message(fe validator.FieldError) string {
	if fe.Field() == "Variant" {
		return "Invalid car type selected!"
	}
	return rv.messageFor(fieldLabel(fe.StructNamespace()), fe.Tag(), fe.Param())
}

func (rv *requestValidator) messageFor(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("Error: %s must not be empty!", field)
	case "deskid":
		return fmt.Sprintf("Error: %s must be a single word of at most %d characters!", field, rv.maxIDLength)
	case "max":
		return fmt.Sprintf("Error: %s must be at most %s characters!", field, param)
	default:
		return fmt.Sprintf("Error: %s is invalid!", field)
	}
}

var fieldLabels = map[string]string{
	"AddCarRequest.ID":           "Car ID",
	"AddCarRequest.Model":        "Car Model",
	"AddCustomerRequest.ID":      "User ID",
	"AddCustomerRequest.Name":    "User Name",
	"RentCarRequest.CarID":       "Car ID",
	"RentCarRequest.CustomerID":  "User ID",
	"ReturnCarRequest.SearchKey": "Rental ID or Car ID",
}

func fieldLabel(namespace string) string {
	if label, ok := fieldLabels[namespace]; ok {
		return label
	}
	return namespace
}
