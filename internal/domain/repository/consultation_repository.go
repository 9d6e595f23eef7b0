package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

type ConsultationRepository interface {
	LoadAll(ctx context.Context) ([]entity.ConsultationRecord, error)
	SaveAll(ctx context.Context, records []entity.ConsultationRecord) error
}
