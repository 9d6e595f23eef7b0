package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
	domainRepo "go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
)

type prescriptionRepository struct {
	store store.Store
}

func NewPrescriptionRepository(s store.Store) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{store: s}
}

func (r *prescriptionRepository) LoadAll(ctx context.Context) ([]entity.PrescriptionOrder, error) {
	return loadCollection[entity.PrescriptionOrder](ctx, r.store, prescriptionsKey)
}

func (r *prescriptionRepository) SaveAll(ctx context.Context, orders []entity.PrescriptionOrder) error {
	return saveCollection(ctx, r.store, prescriptionsKey, orders)
}
