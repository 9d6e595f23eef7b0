package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
	domainRepo "go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
)

type labRequestRepository struct {
	store store.Store
}

func NewLabRequestRepository(s store.Store) domainRepo.LabRequestRepository {
	return &labRequestRepository{store: s}
}

func (r *labRequestRepository) LoadAll(ctx context.Context) ([]entity.LabRequest, error) {
	return loadCollection[entity.LabRequest](ctx, r.store, labRequestsKey)
}

func (r *labRequestRepository) SaveAll(ctx context.Context, requests []entity.LabRequest) error {
	return saveCollection(ctx, r.store, labRequestsKey, requests)
}

type labReportRepository struct {
	store store.Store
}

func NewLabReportRepository(s store.Store) domainRepo.LabReportRepository {
	return &labReportRepository{store: s}
}

func (r *labReportRepository) LoadAll(ctx context.Context) ([]entity.LabReport, error) {
	return loadCollection[entity.LabReport](ctx, r.store, labReportsKey)
}

func (r *labReportRepository) SaveAll(ctx context.Context, reports []entity.LabReport) error {
	return saveCollection(ctx, r.store, labReportsKey, reports)
}
