package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

type StockRepository interface {
	LoadAll(ctx context.Context) ([]entity.StockItem, error)
	SaveAll(ctx context.Context, items []entity.StockItem) error
}
