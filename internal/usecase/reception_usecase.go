package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-clinic-workflow/internal/converter"
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/service"
	"go-clinic-workflow/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found in roster")
	ErrPatientNotFound = errors.New("patient not found")
)

type ReceptionUsecase interface {
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error)
	DoctorBoard(ctx context.Context) ([]dto.DoctorStatusResponse, error)
	FindPatient(ctx context.Context, patientID string) (*dto.VisitResponse, error)
	UpdateContact(ctx context.Context, req *dto.UpdateContactRequest) (*dto.VisitResponse, error)
	DeletePatient(ctx context.Context, patientID string) error
}

type receptionUsecase struct {
	log         *logrus.Logger
	validate    *validator.CustomValidator
	visitRepo   repository.VisitRepository
	historyRepo repository.PatientHistoryRepository
	rosterRepo  repository.RosterRepository
	tokens      *service.TokenAllocator
}

func NewReceptionUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	visitRepo repository.VisitRepository,
	historyRepo repository.PatientHistoryRepository,
	rosterRepo repository.RosterRepository,
	tokens *service.TokenAllocator,
) ReceptionUsecase {
	return &receptionUsecase{
		log:         log,
		validate:    validate,
		visitRepo:   visitRepo,
		historyRepo: historyRepo,
		rosterRepo:  rosterRepo,
		tokens:      tokens,
	}
}

// CheckIn creates a visit in Waiting status, appends it to the doctor's queue
// and to the permanent patient history, and returns the data printed on the
// check-in slip.
//
// Flow:
// 1. Validate the form (10-digit contact)
// 2. Resolve the doctor from the roster
// 3. Allocate a queue token (best-effort sequence, see TokenAllocator)
// 4. Append to queue and history
func (u *receptionUsecase) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	// Step 2: the doctor must exist and hold the Doctor role
	doctor, err := u.findDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	// Step 3
	token, err := u.tokens.Allocate(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to allocate token for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	now := time.Now()
	visit := entity.Visit{
		ID:          entity.NewVisitID(now),
		Token:       token,
		Name:        req.Name,
		Age:         req.Age,
		Address:     req.Address,
		BloodGroup:  req.BloodGroup,
		Contact:     req.Contact,
		DoctorID:    req.DoctorID,
		Status:      entity.VisitStatusWaiting,
		CheckInTime: now,
	}

	// Step 4: two separate whole-collection writes, no transaction spanning
	// them. The queue write is the one claim-next depends on.
	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}
	visits = append(visits, visit)
	if err := u.visitRepo.SaveAll(ctx, visits); err != nil {
		u.log.Errorf("Failed to save patient queue: %+v", err)
		return nil, err
	}

	history, err := u.historyRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient history: %w", err)
	}
	history = append(history, visit)
	if err := u.historyRepo.SaveAll(ctx, history); err != nil {
		u.log.Errorf("Failed to save patient history: %+v", err)
		return nil, err
	}

	u.log.Infof("Checked in patient %s (token=%s) for doctor %s", visit.ID, token, req.DoctorID)

	return &dto.CheckInResponse{
		Visit:      *converter.VisitToResponse(&visit),
		DoctorName: doctor.Name,
		Room:       doctor.Location,
		Fee:        doctor.ConsultationFee().Round(2),
	}, nil
}

// DoctorBoard lists every doctor on the roster with their current waiting
// count, for the reception dashboard.
func (u *receptionUsecase) DoctorBoard(ctx context.Context) ([]dto.DoctorStatusResponse, error) {
	roster, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}

	waiting := make(map[string]int)
	for _, v := range visits {
		if v.IsWaiting() {
			waiting[v.DoctorID]++
		}
	}

	var board []dto.DoctorStatusResponse
	for i := range roster {
		if !roster[i].IsDoctor() {
			continue
		}
		board = append(board, dto.DoctorStatusResponse{
			ID:           roster[i].ID,
			Name:         roster[i].Name,
			Detail:       roster[i].Detail,
			Location:     roster[i].Location,
			Status:       roster[i].Status,
			Fee:          roster[i].ConsultationFee().Round(2),
			WaitingCount: waiting[roster[i].ID],
		})
	}
	return board, nil
}

// FindPatient looks a patient up in the permanent history by id.
func (u *receptionUsecase) FindPatient(ctx context.Context, patientID string) (*dto.VisitResponse, error) {
	history, err := u.historyRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient history: %w", err)
	}
	for i := range history {
		if history[i].ID == patientID {
			return converter.VisitToResponse(&history[i]), nil
		}
	}
	return nil, ErrPatientNotFound
}

// UpdateContact is the contact-correction operation, the only sanctioned
// mutation of the patient snapshot. It rewrites both the history entry and
// any live queue entry for the same visit id.
func (u *receptionUsecase) UpdateContact(ctx context.Context, req *dto.UpdateContactRequest) (*dto.VisitResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	history, err := u.historyRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient history: %w", err)
	}

	var updated *entity.Visit
	for i := range history {
		if history[i].ID == req.PatientID {
			history[i].Contact = req.Contact
			updated = &history[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrPatientNotFound
	}
	if err := u.historyRepo.SaveAll(ctx, history); err != nil {
		u.log.Errorf("Failed to save patient history: %+v", err)
		return nil, err
	}

	visits, err := u.visitRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient queue: %w", err)
	}
	changed := false
	for i := range visits {
		if visits[i].ID == req.PatientID {
			visits[i].Contact = req.Contact
			changed = true
		}
	}
	if changed {
		if err := u.visitRepo.SaveAll(ctx, visits); err != nil {
			u.log.Errorf("Failed to save patient queue: %+v", err)
			return nil, err
		}
	}

	u.log.Infof("Updated contact for patient %s", req.PatientID)
	return converter.VisitToResponse(updated), nil
}

// DeletePatient permanently removes a patient from the history. Irreversible;
// queue entries are untouched, deleting history is not a queue operation.
func (u *receptionUsecase) DeletePatient(ctx context.Context, patientID string) error {
	history, err := u.historyRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load patient history: %w", err)
	}

	kept := history[:0]
	for _, v := range history {
		if v.ID != patientID {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(history) {
		return ErrPatientNotFound
	}

	if err := u.historyRepo.SaveAll(ctx, kept); err != nil {
		u.log.Errorf("Failed to save patient history: %+v", err)
		return err
	}

	u.log.Infof("Deleted patient %s from history", patientID)
	return nil
}

func (u *receptionUsecase) findDoctor(ctx context.Context, doctorID string) (*entity.StaffMember, error) {
	roster, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	for i := range roster {
		if roster[i].ID == doctorID && roster[i].IsDoctor() {
			return &roster[i], nil
		}
	}
	return nil, ErrDoctorNotFound
}
