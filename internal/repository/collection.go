package repository

import (
	"context"
	"errors"

	"go-clinic-workflow/internal/infrastructure/store"
)

// Store keys of the logical collections.
const (
	visitsKey         = "clinic:patient_queue"
	patientHistoryKey = "clinic:patient_history"
	consultationsKey  = "clinic:consultations"
	labRequestsKey    = "clinic:lab_requests"
	labReportsKey     = "clinic:lab_reports"
	prescriptionsKey  = "clinic:prescriptions"
	stockKey          = "clinic:pharmacy_stock"
	rosterKey         = "clinic:staff_roster"
	billsKey          = "clinic:patient_bills"
)

// loadCollection reads a whole collection document. A key that does not exist
// yet reads as an empty collection.
func loadCollection[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	var items []T
	if err := s.Get(ctx, key, &items); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	return items, nil
}

// saveCollection writes a whole collection document back, replacing whatever
// is there. Last writer wins by store contract.
func saveCollection[T any](ctx context.Context, s store.Store, key string, items []T) error {
	return s.Put(ctx, key, items)
}
