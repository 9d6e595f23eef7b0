package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type StaffRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" validate:"required,min=2"`
	Role     string          `json:"role" validate:"required"`
	Detail   string          `json:"detail"`
	Location string          `json:"location"`
	Status   string          `json:"status"`
	Password string          `json:"password"`
	Fee      decimal.Decimal `json:"fee"`
}

// Response DTOs

type StaffResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Detail   string          `json:"detail,omitempty"`
	Location string          `json:"location,omitempty"`
	Status   string          `json:"status"`
	Fee      decimal.Decimal `json:"fee,omitempty"`
}

type RosterResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}
