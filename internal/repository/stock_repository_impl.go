package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
	domainRepo "go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
)

type stockRepository struct {
	store store.Store
}

func NewStockRepository(s store.Store) domainRepo.StockRepository {
	return &stockRepository{store: s}
}

func (r *stockRepository) LoadAll(ctx context.Context) ([]entity.StockItem, error) {
	return loadCollection[entity.StockItem](ctx, r.store, stockKey)
}

func (r *stockRepository) SaveAll(ctx context.Context, items []entity.StockItem) error {
	return saveCollection(ctx, r.store, stockKey, items)
}
