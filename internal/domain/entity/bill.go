package entity

import (
	"github.com/shopspring/decimal"
)

// BillStatus represents payment state on the admin billing report.
type BillStatus string

const (
	BillStatusPending BillStatus = "Pending"
	BillStatusPaid    BillStatus = "Paid"
)

// PatientBill is one line of the admin billing report. Provider is the staff
// id of whoever generated the charge.
type PatientBill struct {
	BillID    string          `json:"bill_id"`
	PatientID string          `json:"patient_id"`
	Item      string          `json:"item"`
	Provider  string          `json:"provider"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Status    BillStatus      `json:"status"`
}

// IsPaid checks if the bill has been settled.
func (b *PatientBill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// MarkPaid settles the bill.
func (b *PatientBill) MarkPaid() {
	b.Status = BillStatusPaid
}
