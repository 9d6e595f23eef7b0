package dto

import (
	"github.com/shopspring/decimal"
)

type BillResponse struct {
	BillID    string          `json:"bill_id"`
	PatientID string          `json:"patient_id"`
	Item      string          `json:"item"`
	Provider  string          `json:"provider"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Status    string          `json:"status"`
}

type BillingReportResponse struct {
	Bills     []BillResponse  `json:"bills"`
	PaidTotal decimal.Decimal `json:"paid_total"`
}
