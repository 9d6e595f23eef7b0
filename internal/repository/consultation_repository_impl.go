package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
	domainRepo "go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
)

type consultationRepository struct {
	store store.Store
}

func NewConsultationRepository(s store.Store) domainRepo.ConsultationRepository {
	return &consultationRepository{store: s}
}

func (r *consultationRepository) LoadAll(ctx context.Context) ([]entity.ConsultationRecord, error) {
	return loadCollection[entity.ConsultationRecord](ctx, r.store, consultationsKey)
}

func (r *consultationRepository) SaveAll(ctx context.Context, records []entity.ConsultationRecord) error {
	return saveCollection(ctx, r.store, consultationsKey, records)
}
