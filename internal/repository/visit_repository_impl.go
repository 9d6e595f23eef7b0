package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
	domainRepo "go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
)

type visitRepository struct {
	store store.Store
}

func NewVisitRepository(s store.Store) domainRepo.VisitRepository {
	return &visitRepository{store: s}
}

func (r *visitRepository) LoadAll(ctx context.Context) ([]entity.Visit, error) {
	return loadCollection[entity.Visit](ctx, r.store, visitsKey)
}

func (r *visitRepository) SaveAll(ctx context.Context, visits []entity.Visit) error {
	return saveCollection(ctx, r.store, visitsKey, visits)
}

type patientHistoryRepository struct {
	store store.Store
}

func NewPatientHistoryRepository(s store.Store) domainRepo.PatientHistoryRepository {
	return &patientHistoryRepository{store: s}
}

func (r *patientHistoryRepository) LoadAll(ctx context.Context) ([]entity.Visit, error) {
	return loadCollection[entity.Visit](ctx, r.store, patientHistoryKey)
}

func (r *patientHistoryRepository) SaveAll(ctx context.Context, visits []entity.Visit) error {
	return saveCollection(ctx, r.store, patientHistoryKey, visits)
}
