package repository

import (
	"context"

	"go-clinic-workflow/internal/domain/entity"
)

// LabRequestRepository is the open lab sub-ledger. Completion and explicit
// delete are the only ways out of it.
type LabRequestRepository interface {
	LoadAll(ctx context.Context) ([]entity.LabRequest, error)
	SaveAll(ctx context.Context, requests []entity.LabRequest) error
}

// LabReportRepository is the doctors' report inbox, fed by lab completion.
type LabReportRepository interface {
	LoadAll(ctx context.Context) ([]entity.LabReport, error)
	SaveAll(ctx context.Context, reports []entity.LabReport) error
}
