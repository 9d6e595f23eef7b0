package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
	domainRepo "go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
)

type rosterRepository struct {
	store store.Store
}

func NewRosterRepository(s store.Store) domainRepo.RosterRepository {
	return &rosterRepository{store: s}
}

func (r *rosterRepository) LoadAll(ctx context.Context) ([]entity.StaffMember, error) {
	return loadCollection[entity.StaffMember](ctx, r.store, rosterKey)
}

func (r *rosterRepository) SaveAll(ctx context.Context, staff []entity.StaffMember) error {
	return saveCollection(ctx, r.store, rosterKey, staff)
}
