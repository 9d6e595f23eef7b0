package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpsertStockRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Quantity decimal.Decimal `json:"qty" validate:"required"`
}

// Response DTOs

type StockItemResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"qty"`
}

type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
	Total int                 `json:"total"`
}
