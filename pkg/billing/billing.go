// Package billing computes invoice totals. It is pure: no state, no clock,
// no store access. Amounts stay at full precision internally; rounding to two
// decimal places happens only when a value is formatted for output, so
// recomputing an invoice any number of times never compounds rounding error.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat rate applied to every lab and pharmacy invoice.
var TaxRate = decimal.RequireFromString("0.05")

// Totals holds full-precision invoice amounts.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Compute derives tax and grand total from a subtotal.
func Compute(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// Line is one invoice line item.
type Line struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is the document handed to the print/render collaborator.
type Invoice struct {
	Number      string    `json:"number"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Token       string    `json:"token,omitempty"`
	Provider    string    `json:"provider"`
	Lines       []Line    `json:"lines"`
	Totals      Totals    `json:"totals"`
	IssuedAt    time.Time `json:"issued_at"`
}
