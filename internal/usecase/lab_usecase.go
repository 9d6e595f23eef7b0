package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-clinic-workflow/internal/converter"
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/pkg/billing"
	"go-clinic-workflow/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrLabRequestNotFound = errors.New("lab request not found")

type LabUsecase interface {
	PendingRequests(ctx context.Context, patientID string) ([]dto.LabRequestResponse, error)
	GetRequest(ctx context.Context, requestID string) (*dto.LabRequestResponse, error)
	UpdateRequest(ctx context.Context, requestID string, req *dto.LabResultsRequest) (*dto.LabRequestResponse, error)
	CompleteRequest(ctx context.Context, requestID, technicianName string, req *dto.LabResultsRequest) (*dto.InvoiceResponse, error)
	DeleteRequest(ctx context.Context, requestID string) error
	TestCatalog() []dto.TestOrderResponse
}

type labUsecase struct {
	log            *logrus.Logger
	validate       *validator.CustomValidator
	labRequestRepo repository.LabRequestRepository
	labReportRepo  repository.LabReportRepository
	billRepo       repository.BillRepository
}

func NewLabUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	labRequestRepo repository.LabRequestRepository,
	labReportRepo repository.LabReportRepository,
	billRepo repository.BillRepository,
) LabUsecase {
	return &labUsecase{
		log:            log,
		validate:       validate,
		labRequestRepo: labRequestRepo,
		labReportRepo:  labReportRepo,
		billRepo:       billRepo,
	}
}

// PendingRequests lists the open lab ledger, optionally filtered by a
// case-insensitive patient-id substring.
func (u *labUsecase) PendingRequests(ctx context.Context, patientID string) ([]dto.LabRequestResponse, error) {
	requests, err := u.labRequestRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lab requests: %w", err)
	}

	needle := strings.ToLower(patientID)
	var matched []entity.LabRequest
	for _, r := range requests {
		if needle != "" && !strings.Contains(strings.ToLower(r.PatientID), needle) {
			continue
		}
		matched = append(matched, r)
	}

	return converter.LabRequestsToResponses(matched), nil
}

func (u *labUsecase) GetRequest(ctx context.Context, requestID string) (*dto.LabRequestResponse, error) {
	requests, err := u.labRequestRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lab requests: %w", err)
	}
	for i := range requests {
		if requests[i].RequestID == requestID {
			return converter.LabRequestToResponse(&requests[i]), nil
		}
	}
	return nil, ErrLabRequestNotFound
}

// UpdateRequest saves collection details and results onto an open request
// without completing it, so a technician can fill the form in stages.
func (u *labUsecase) UpdateRequest(ctx context.Context, requestID string, req *dto.LabResultsRequest) (*dto.LabRequestResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	requests, err := u.labRequestRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lab requests: %w", err)
	}

	var updated *entity.LabRequest
	for i := range requests {
		if requests[i].RequestID == requestID {
			requests[i].CollectionDate = req.CollectionDate
			requests[i].CollectionTime = req.CollectionTime
			requests[i].ResultsNotes = req.ResultsNotes
			updated = &requests[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrLabRequestNotFound
	}

	if err := u.labRequestRepo.SaveAll(ctx, requests); err != nil {
		u.log.Errorf("Failed to save lab requests: %+v", err)
		return nil, err
	}

	u.log.Infof("Updated lab request %s", requestID)
	return converter.LabRequestToResponse(updated), nil
}

// CompleteRequest closes a lab request: it emits a report into the ordering
// doctor's inbox, removes the request from the open ledger, posts a pending
// bill, and returns the printable invoice.
func (u *labUsecase) CompleteRequest(ctx context.Context, requestID, technicianName string, req *dto.LabResultsRequest) (*dto.InvoiceResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	requests, err := u.labRequestRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lab requests: %w", err)
	}

	var request *entity.LabRequest
	kept := make([]entity.LabRequest, 0, len(requests))
	for i := range requests {
		if requests[i].RequestID == requestID {
			request = &requests[i]
			continue
		}
		kept = append(kept, requests[i])
	}
	if request == nil {
		return nil, ErrLabRequestNotFound
	}

	now := time.Now()
	totalFee := request.TotalFee()

	// Step 1: report into the doctor's inbox
	report := entity.LabReport{
		ReportID:       uuid.NewString(),
		PatientID:      request.PatientID,
		PatientName:    request.PatientName,
		DoctorID:       request.DoctorID,
		DoctorName:     request.DoctorName,
		TechnicianName: technicianName,
		TestDetails:    request.Tests,
		TotalFee:       totalFee,
		CollectionDate: req.CollectionDate,
		CollectionTime: req.CollectionTime,
		ResultsNotes:   req.ResultsNotes,
		CompletedAt:    now,
	}
	reports, err := u.labReportRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lab reports: %w", err)
	}
	reports = append(reports, report)
	if err := u.labReportRepo.SaveAll(ctx, reports); err != nil {
		u.log.Errorf("Failed to save lab reports: %+v", err)
		return nil, err
	}

	// Step 2: drop the request from the open ledger
	if err := u.labRequestRepo.SaveAll(ctx, kept); err != nil {
		u.log.Errorf("Failed to save lab requests: %+v", err)
		return nil, err
	}

	totals := billing.Compute(totalFee)

	// Step 3: pending bill for the admin report
	bill := entity.PatientBill{
		BillID:    uuid.NewString(),
		PatientID: request.PatientID,
		Item:      billItemForTests(request.Tests),
		Provider:  technicianName,
		Amount:    totals.GrandTotal,
		Date:      now.Format("2006-01-02"),
		Status:    entity.BillStatusPending,
	}
	bills, err := u.billRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient bills: %w", err)
	}
	bills = append(bills, bill)
	if err := u.billRepo.SaveAll(ctx, bills); err != nil {
		u.log.Errorf("Failed to save patient bills: %+v", err)
		return nil, err
	}

	// Step 4: printable invoice
	lines := make([]billing.Line, 0, len(request.Tests))
	for _, t := range request.Tests {
		lines = append(lines, billing.Line{
			Description: t.Name,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   t.Cost,
			Amount:      t.Cost,
		})
	}
	invoice := billing.Invoice{
		Number:      fmt.Sprintf("LAB-%s", report.ReportID[:8]),
		PatientID:   request.PatientID,
		PatientName: request.PatientName,
		Provider:    technicianName,
		Lines:       lines,
		Totals:      totals,
		IssuedAt:    now,
	}

	u.log.Infof("Completed lab request %s, report %s sent to doctor %s", requestID, report.ReportID, request.DoctorID)
	return converter.InvoiceToResponse(&invoice), nil
}

// DeleteRequest discards an open request without emitting a report or a bill.
func (u *labUsecase) DeleteRequest(ctx context.Context, requestID string) error {
	requests, err := u.labRequestRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load lab requests: %w", err)
	}

	kept := requests[:0]
	for _, r := range requests {
		if r.RequestID != requestID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(requests) {
		return ErrLabRequestNotFound
	}

	if err := u.labRequestRepo.SaveAll(ctx, kept); err != nil {
		u.log.Errorf("Failed to save lab requests: %+v", err)
		return err
	}

	u.log.Infof("Deleted lab request %s", requestID)
	return nil
}

// TestCatalog lists the orderable tests with current costs; ranges shown are
// the adult ones since no patient is in scope yet.
func (u *labUsecase) TestCatalog() []dto.TestOrderResponse {
	names := entity.LabTests()
	catalog := make([]dto.TestOrderResponse, 0, len(names))
	for _, name := range names {
		cost, _ := entity.TestCost(name)
		catalog = append(catalog, dto.TestOrderResponse{
			Name:        name,
			Cost:        cost.Round(2),
			NormalRange: entity.NormalRange(name, entity.AgeBandAdult),
		})
	}
	return catalog
}

func billItemForTests(tests []entity.TestOrder) string {
	names := make([]string, 0, len(tests))
	for _, t := range tests {
		names = append(names, t.Name)
	}
	return "Lab: " + strings.Join(names, ", ")
}
