package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
	domainRepo "go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
)

type billRepository struct {
	store store.Store
}

func NewBillRepository(s store.Store) domainRepo.BillRepository {
	return &billRepository{store: s}
}

func (r *billRepository) LoadAll(ctx context.Context) ([]entity.PatientBill, error) {
	return loadCollection[entity.PatientBill](ctx, r.store, billsKey)
}

func (r *billRepository) SaveAll(ctx context.Context, bills []entity.PatientBill) error {
	return saveCollection(ctx, r.store, billsKey, bills)
}
