package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

type BillRepository interface {
	LoadAll(ctx context.Context) ([]entity.PatientBill, error)
	SaveAll(ctx context.Context, bills []entity.PatientBill) error
}
