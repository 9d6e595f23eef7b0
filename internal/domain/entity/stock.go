package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StockItem is one medicine in the pharmacy directory. Name is its identity,
// matched case-insensitively.
type StockItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"qty"`
}

// Matches reports whether the item is the named medicine.
func (s *StockItem) Matches(name string) bool {
	return strings.EqualFold(s.Name, name)
}

// Deduct removes a dispensed quantity from the on-hand count, flooring at
// zero so stock never goes negative.
func (s *StockItem) Deduct(qty decimal.Decimal) {
	s.Quantity = s.Quantity.Sub(qty)
	if s.Quantity.IsNegative() {
		s.Quantity = decimal.Zero
	}
}
