package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-clinic-workflow/internal/converter"
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrBillAlreadyPaid = errors.New("bill already paid")
)

type BillingReportUsecase interface {
	Report(ctx context.Context, search string) (*dto.BillingReportResponse, error)
	MarkPaid(ctx context.Context, billID string) (*dto.BillResponse, error)
}

type billingReportUsecase struct {
	log      *logrus.Logger
	billRepo repository.BillRepository
}

func NewBillingReportUsecase(log *logrus.Logger, billRepo repository.BillRepository) BillingReportUsecase {
	return &billingReportUsecase{log: log, billRepo: billRepo}
}

// Report lists every bill with the running total of paid amounts, optionally
// filtered by a case-insensitive substring on patient id or item.
func (u *billingReportUsecase) Report(ctx context.Context, search string) (*dto.BillingReportResponse, error) {
	bills, err := u.billRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient bills: %w", err)
	}

	needle := strings.ToLower(search)
	paidTotal := decimal.Zero
	var matched []entity.PatientBill
	for _, b := range bills {
		if b.IsPaid() {
			paidTotal = paidTotal.Add(b.Amount)
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.PatientID), needle) &&
			!strings.Contains(strings.ToLower(b.Item), needle) {
			continue
		}
		matched = append(matched, b)
	}

	return &dto.BillingReportResponse{
		Bills:     converter.BillsToResponses(matched),
		PaidTotal: paidTotal.Round(2),
	}, nil
}

// MarkPaid settles a pending bill.
func (u *billingReportUsecase) MarkPaid(ctx context.Context, billID string) (*dto.BillResponse, error) {
	bills, err := u.billRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient bills: %w", err)
	}

	var settled *entity.PatientBill
	for i := range bills {
		if bills[i].BillID == billID {
			if bills[i].IsPaid() {
				return nil, ErrBillAlreadyPaid
			}
			bills[i].MarkPaid()
			settled = &bills[i]
			break
		}
	}
	if settled == nil {
		return nil, ErrBillNotFound
	}

	if err := u.billRepo.SaveAll(ctx, bills); err != nil {
		u.log.Errorf("Failed to save patient bills: %+v", err)
		return nil, err
	}

	u.log.Infof("Marked bill %s paid", billID)
	return converter.BillToResponse(settled), nil
}
