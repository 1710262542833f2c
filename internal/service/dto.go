package service

import "carrental-desk/internal/domain"

type AddCarRequest struct {
	ID      string            `validate:"required,deskid"`
	Model   string            `validate:"required,max=128"`
	Variant domain.CarVariant `validate:"required,oneof=ECONOMY LUXURY"`
}

type AddCustomerRequest struct {
	ID   string `validate:"required,deskid"`
	Name string `validate:"required,max=128"`
}

// RentCarRequest days are simulation day numbers and are not range checked.
type RentCarRequest struct {
	CarID      string `validate:"required"`
	CustomerID string `validate:"required"`
	StartDay   int
}

// ReturnCarRequest matches SearchKey against a rental id or a car id.
type ReturnCarRequest struct {
	SearchKey string `validate:"required"`
	ReturnDay int
}
