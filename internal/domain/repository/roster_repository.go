package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

// RosterRepository is the staff directory. The workflow usecases only read
// it; the admin roster usecase is its single writer.
type RosterRepository interface {
	LoadAll(ctx context.Context) ([]entity.StaffMember, error)
	SaveAll(ctx context.Context, staff []entity.StaffMember) error
}
