package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

// VisitRepository is the doctor-queue collection: every visit currently in the
// workflow, in insertion order. Insertion order is the FIFO order claim-next
// relies on.
type VisitRepository interface {
	LoadAll(ctx context.Context) ([]entity.Visit, error)
	SaveAll(ctx context.Context, visits []entity.Visit) error
}
