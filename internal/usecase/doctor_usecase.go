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
	"go-clinic-workflow/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyQueue             = errors.New("no patients waiting")
	ErrConsultationInProgress = errors.New("a consultation is already in progress")
	ErrVisitNotFound          = errors.New("visit not found")
	ErrVisitNotConsulting     = errors.New("visit is not in consultation")
	ErrConsultationNotFound   = errors.New("consultation record not found")
	ErrLabTestUnknown         = errors.New("lab test is not in the catalog")
	ErrLabReportNotFound      = errors.New("lab report not found")
)

type DoctorUsecase interface {
	Queue(ctx context.Context, doctorID string) (*dto.QueueResponse, error)
	ClaimNext(ctx context.Context, doctorID string) (*dto.VisitResponse, error)
	ReleaseVisit(ctx context.Context, doctorID, visitID string) (*dto.VisitResponse, error)
	CompleteConsultation(ctx context.Context, doctorID string, req *dto.CompleteConsultationRequest) (*dto.ConsultationResponse, error)
	Consultations(ctx context.Context, doctorID, patientName string) ([]dto.ConsultationResponse, error)
	UpdateConsultation(ctx context.Context, doctorID, consultationID string, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, doctorID, consultationID string) error
	OrderLabTest(ctx context.Context, doctorID string, req *dto.OrderLabTestRequest) (*dto.LabRequestResponse, error)
	IssuePrescription(ctx context.Context, doctorID string, req *dto.IssuePrescriptionRequest) (*dto.PrescriptionResponse, error)
	LabReports(ctx context.Context, doctorID, patientID string) ([]dto.LabReportResponse, error)
	ConfirmLabReport(ctx context.Context, doctorID, reportID string) error
}

type doctorUsecase struct {
	log              *logrus.Logger
	validate         *validator.CustomValidator
	visitRepo        repository.VisitRepository
	consultationRepo repository.ConsultationRepository
	labRequestRepo   repository.LabRequestRepository
	labReportRepo    repository.LabReportRepository
	prescriptionRepo repository.PrescriptionRepository
	rosterRepo       repository.RosterRepository
}

func NewDoctorUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	visitRepo repository.VisitRepository,
	consultationRepo repository.ConsultationRepository,
	labRequestRepo repository.LabRequestRepository,
	labReportRepo repository.LabReportRepository,
	prescriptionRepo repository.PrescriptionRepository,
	rosterRepo repository.RosterRepository,
) DoctorUsecase {
	return &doctorUsecase{
		log:              log,
		validate:         validate,
		visitRepo:        visitRepo,
		consultationRepo: consultationRepo,
		labRequestRepo:   labRequestRepo,
		labReportRepo:    labReportRepo,
		prescriptionRepo: prescriptionRepo,
		rosterRepo:       rosterRepo,
	}
}

// Queue lists the doctor's waiting patients in check-in order.
func (u *doctorUsecase) Queue(ctx context.Context, doctorID string) (*dto.QueueResponse, error) {
	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}

	var waiting []entity.Visit
	for _, v := range visits {
		if v.DoctorID == doctorID && v.IsWaiting() {
			waiting = append(waiting, v)
		}
	}

	return &dto.QueueResponse{
		Visits: converter.VisitsToResponses(waiting),
		Total:  len(waiting),
	}, nil
}

// ClaimNext moves the doctor's oldest waiting visit into Consulting. A doctor
// handles one patient at a time: claiming while another visit is already
// Consulting for the same doctor is refused.
func (u *doctorUsecase) ClaimNext(ctx context.Context, doctorID string) (*dto.VisitResponse, error) {
	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}

	// Step 1: precondition, no second concurrent consultation
	for i := range visits {
		if visits[i].DoctorID == doctorID && visits[i].IsConsulting() {
			return nil, ErrConsultationInProgress
		}
	}

	// Step 2: FIFO on insertion order
	var claimed *entity.Visit
	for i := range visits {
		if visits[i].DoctorID == doctorID && visits[i].IsWaiting() {
			visits[i].BeginConsultation()
			claimed = &visits[i]
			break
		}
	}
	if claimed == nil {
		return nil, ErrEmptyQueue
	}

	if err := u.visitRepo.SaveAll(ctx, visits); err != nil {
		u.log.Errorf("Failed to save patient queue: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %s claimed visit %s (token=%s)", doctorID, claimed.ID, claimed.Token)
	return converter.VisitToResponse(claimed), nil
}

// ReleaseVisit pushes a claimed visit back to Waiting, the one sanctioned
// status regression. It keeps its original place in the queue order.
func (u *doctorUsecase) ReleaseVisit(ctx context.Context, doctorID, visitID string) (*dto.VisitResponse, error) {
	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}

	var released *entity.Visit
	for i := range visits {
		if visits[i].ID == visitID && visits[i].DoctorID == doctorID {
			if !visits[i].IsConsulting() {
				return nil, ErrVisitNotConsulting
			}
			visits[i].Release()
			released = &visits[i]
			break
		}
	}
	if released == nil {
		return nil, ErrVisitNotFound
	}

	if err := u.visitRepo.SaveAll(ctx, visits); err != nil {
		u.log.Errorf("Failed to save patient queue: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %s released visit %s back to waiting", doctorID, visitID)
	return converter.VisitToResponse(released), nil
}

// CompleteConsultation writes the consultation record and moves the visit to
// Completed. Symptoms and diagnosis captured here are final; later edits can
// only touch the other clinical fields. The history copy of the visit is left
// alone.
func (u *doctorUsecase) CompleteConsultation(ctx context.Context, doctorID string, req *dto.CompleteConsultationRequest) (*dto.ConsultationResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}

	var visit *entity.Visit
	for i := range visits {
		if visits[i].ID == req.VisitID && visits[i].DoctorID == doctorID {
			visit = &visits[i]
			break
		}
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	if !visit.IsConsulting() {
		return nil, ErrVisitNotConsulting
	}

	record := entity.ConsultationRecord{
		ConsultationID:    uuid.NewString(),
		VisitID:           visit.ID,
		PatientToken:      visit.Token,
		PatientName:       visit.Name,
		PatientAge:        visit.Age,
		PatientBloodGroup: visit.BloodGroup,
		PatientContact:    visit.Contact,
		DoctorID:          doctorID,
		DoctorName:        u.doctorName(ctx, doctorID),
		ConsultationDate:  time.Now(),
		Symptoms:          req.Symptoms,
		Diagnosis:         req.Diagnosis,
		Weight:            req.Weight,
		Height:            req.Height,
		InternalNotes:     req.InternalNotes,
		Prescription: entity.Prescription{
			MedicineName: req.Prescription.MedicineName,
			Dose:         req.Prescription.Dose,
			Duration:     req.Prescription.Duration,
			DosageText:   req.Prescription.DosageText,
		},
		LabTest: req.LabTest,
	}

	records, err := u.consultationRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load consultations: %w", err)
	}
	records = append(records, record)
	if err := u.consultationRepo.SaveAll(ctx, records); err != nil {
		u.log.Errorf("Failed to save consultations: %+v", err)
		return nil, err
	}

	visit.Complete()
	if err := u.visitRepo.SaveAll(ctx, visits); err != nil {
		u.log.Errorf("Failed to save patient queue: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %s completed consultation %s for visit %s", doctorID, record.ConsultationID, visit.ID)
	return converter.ConsultationToResponse(&record), nil
}

// Consultations lists the doctor's records, newest first, optionally filtered
// by a case-insensitive patient-name substring.
func (u *doctorUsecase) Consultations(ctx context.Context, doctorID, patientName string) ([]dto.ConsultationResponse, error) {
	records, err := u.consultationRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load consultations: %w", err)
	}

	needle := strings.ToLower(patientName)
	var matched []entity.ConsultationRecord
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].DoctorID != doctorID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(records[i].PatientName), needle) {
			continue
		}
		matched = append(matched, records[i])
	}

	return converter.ConsultationsToResponses(matched), nil
}

// UpdateConsultation revises a record's mutable clinical fields. Symptoms and
// diagnosis are preserved whatever the caller sends; the revision timestamp
// replaces the original consultation date.
func (u *doctorUsecase) UpdateConsultation(ctx context.Context, doctorID, consultationID string, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	records, err := u.consultationRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load consultations: %w", err)
	}

	var updated *entity.ConsultationRecord
	for i := range records {
		if records[i].ConsultationID == consultationID && records[i].DoctorID == doctorID {
			records[i].ApplyRevision(entity.ConsultationRecord{
				Weight:        req.Weight,
				Height:        req.Height,
				InternalNotes: req.InternalNotes,
				Prescription: entity.Prescription{
					MedicineName: req.Prescription.MedicineName,
					Dose:         req.Prescription.Dose,
					Duration:     req.Prescription.Duration,
					DosageText:   req.Prescription.DosageText,
				},
				LabTest:          req.LabTest,
				ConsultationDate: time.Now(),
			})
			updated = &records[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrConsultationNotFound
	}

	if err := u.consultationRepo.SaveAll(ctx, records); err != nil {
		u.log.Errorf("Failed to save consultations: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %s updated consultation %s", doctorID, consultationID)
	return converter.ConsultationToResponse(updated), nil
}

// DeleteConsultation removes a record permanently.
func (u *doctorUsecase) DeleteConsultation(ctx context.Context, doctorID, consultationID string) error {
	records, err := u.consultationRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load consultations: %w", err)
	}

	kept := records[:0]
	for _, r := range records {
		if r.ConsultationID != consultationID || r.DoctorID != doctorID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return ErrConsultationNotFound
	}

	if err := u.consultationRepo.SaveAll(ctx, kept); err != nil {
		u.log.Errorf("Failed to save consultations: %+v", err)
		return err
	}

	u.log.Infof("Doctor %s deleted consultation %s", doctorID, consultationID)
	return nil
}

// OrderLabTest opens a lab request for the patient currently in consultation
// with this doctor. The catalog cost is copied onto the order at this moment
// and never re-read.
func (u *doctorUsecase) OrderLabTest(ctx context.Context, doctorID string, req *dto.OrderLabTestRequest) (*dto.LabRequestResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	cost, ok := entity.TestCost(req.TestName)
	if !ok {
		return nil, ErrLabTestUnknown
	}

	visit, err := u.consultingVisit(ctx, doctorID, req.VisitID)
	if err != nil {
		return nil, err
	}

	request := entity.LabRequest{
		RequestID:   uuid.NewString(),
		PatientID:   visit.ID,
		PatientName: visit.Name,
		PatientAge:  visit.Age,
		DoctorID:    doctorID,
		DoctorName:  u.doctorName(ctx, doctorID),
		Tests: []entity.TestOrder{
			{Name: req.TestName, Cost: cost},
		},
		RequestedAt: time.Now(),
	}

	requests, err := u.labRequestRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lab requests: %w", err)
	}
	requests = append(requests, request)
	if err := u.labRequestRepo.SaveAll(ctx, requests); err != nil {
		u.log.Errorf("Failed to save lab requests: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %s ordered %s for patient %s", doctorID, req.TestName, visit.ID)
	return converter.LabRequestToResponse(&request), nil
}

// IssuePrescription opens a pharmacy order for the patient currently in
// consultation with this doctor.
func (u *doctorUsecase) IssuePrescription(ctx context.Context, doctorID string, req *dto.IssuePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	visit, err := u.consultingVisit(ctx, doctorID, req.VisitID)
	if err != nil {
		return nil, err
	}

	order := entity.PrescriptionOrder{
		PrescriptionID: uuid.NewString(),
		PatientID:      visit.ID,
		PatientName:    visit.Name,
		DoctorID:       doctorID,
		DoctorName:     u.doctorName(ctx, doctorID),
		Token:          visit.Token,
		MedicineName:   req.MedicineName,
		Dose:           req.Dose,
		Duration:       req.Duration,
		DosageText:     req.DosageText,
		Status:         entity.PrescriptionStatusPending,
		IssuedAt:       time.Now(),
	}

	orders, err := u.prescriptionRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prescriptions: %w", err)
	}
	orders = append(orders, order)
	if err := u.prescriptionRepo.SaveAll(ctx, orders); err != nil {
		u.log.Errorf("Failed to save prescriptions: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %s prescribed %s for patient %s", doctorID, req.MedicineName, visit.ID)
	return converter.PrescriptionToResponse(&order), nil
}

// LabReports lists the doctor's report inbox, optionally filtered by a
// patient-id substring.
func (u *doctorUsecase) LabReports(ctx context.Context, doctorID, patientID string) ([]dto.LabReportResponse, error) {
	reports, err := u.labReportRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lab reports: %w", err)
	}

	needle := strings.ToLower(patientID)
	var matched []entity.LabReport
	for _, r := range reports {
		if r.DoctorID != doctorID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.PatientID), needle) {
			continue
		}
		matched = append(matched, r)
	}

	return converter.LabReportsToResponses(matched), nil
}

// ConfirmLabReport acknowledges a report and removes it from the inbox.
func (u *doctorUsecase) ConfirmLabReport(ctx context.Context, doctorID, reportID string) error {
	reports, err := u.labReportRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load lab reports: %w", err)
	}

	kept := reports[:0]
	for _, r := range reports {
		if r.ReportID != reportID || r.DoctorID != doctorID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(reports) {
		return ErrLabReportNotFound
	}

	if err := u.labReportRepo.SaveAll(ctx, kept); err != nil {
		u.log.Errorf("Failed to save lab reports: %+v", err)
		return err
	}

	u.log.Infof("Doctor %s confirmed lab report %s", doctorID, reportID)
	return nil
}

// consultingVisit finds the visit and checks it is in Consulting with this
// doctor. Lab orders and prescriptions are only valid mid-consultation.
func (u *doctorUsecase) consultingVisit(ctx context.Context, doctorID, visitID string) (*entity.Visit, error) {
	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}
	for i := range visits {
		if visits[i].ID == visitID && visits[i].DoctorID == doctorID {
			if !visits[i].IsConsulting() {
				return nil, ErrVisitNotConsulting
			}
			return &visits[i], nil
		}
	}
	return nil, ErrVisitNotFound
}

// doctorName resolves the display name from the roster, falling back to the
// id when the roster entry is gone.
func (u *doctorUsecase) doctorName(ctx context.Context, doctorID string) string {
	roster, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load roster for doctor name: %+v", err)
		return doctorID
	}
	for i := range roster {
		if roster[i].ID == doctorID {
			return roster[i].Name
		}
	}
	return doctorID
}
