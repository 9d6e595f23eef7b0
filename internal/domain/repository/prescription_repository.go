package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

type PrescriptionRepository interface {
	LoadAll(ctx context.Context) ([]entity.PrescriptionOrder, error)
	SaveAll(ctx context.Context, orders []entity.PrescriptionOrder) error
}
