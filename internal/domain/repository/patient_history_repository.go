package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

// PatientHistoryRepository is the permanent check-in log. Queue operations
// never remove entries here; only the explicit delete-patient operation does.
type PatientHistoryRepository interface {
	LoadAll(ctx context.Context) ([]entity.Visit, error)
	SaveAll(ctx context.Context, visits []entity.Visit) error
}
