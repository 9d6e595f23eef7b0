package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go-clinic-workflow/internal/converter"
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidRole   = errors.New("unknown staff role")
	ErrStaffIDExists = errors.New("staff id already on the roster")
	ErrStaffNotFound = errors.New("staff member not found")
)

// defaultStaffPassword backs roster entries created without a password, so a
// new hire can log in before the admin sets a real one.
const defaultStaffPassword = "password123"

type RosterUsecase interface {
	Roster(ctx context.Context, search string) (*dto.RosterResponse, error)
	AddStaff(ctx context.Context, req *dto.StaffRequest) (*dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, staffID string, req *dto.StaffRequest) (*dto.StaffResponse, error)
	RemoveStaff(ctx context.Context, staffID string) error
	Doctors(ctx context.Context) ([]dto.StaffResponse, error)
}

type rosterUsecase struct {
	log        *logrus.Logger
	validate   *validator.CustomValidator
	rosterRepo repository.RosterRepository
}

func NewRosterUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	rosterRepo repository.RosterRepository,
) RosterUsecase {
	return &rosterUsecase{
		log:        log,
		validate:   validate,
		rosterRepo: rosterRepo,
	}
}

// Roster lists the staff directory, optionally filtered by a case-insensitive
// substring across name, id, role and detail.
func (u *rosterUsecase) Roster(ctx context.Context, search string) (*dto.RosterResponse, error) {
	staff, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	needle := strings.ToLower(search)
	var matched []entity.StaffMember
	for _, s := range staff {
		if needle != "" && !staffMatches(&s, needle) {
			continue
		}
		matched = append(matched, s)
	}

	return &dto.RosterResponse{
		Staff: converter.StaffToResponses(matched),
		Total: len(matched),
	}, nil
}

// AddStaff registers a new staff member. A missing id is generated from the
// role prefix plus a random 3-digit suffix; an explicit id must be unused.
func (u *rosterUsecase) AddStaff(ctx context.Context, req *dto.StaffRequest) (*dto.StaffResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	role := entity.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	staff, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	id := req.ID
	if id == "" {
		id = generateStaffID(role, staff)
	} else if rosterHasID(staff, id) {
		return nil, ErrStaffIDExists
	}

	password := req.Password
	if password == "" {
		password = defaultStaffPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	status := req.Status
	if status == "" {
		status = entity.StaffStatusAvailable
	}

	member := entity.StaffMember{
		ID:           id,
		Name:         req.Name,
		Role:         role,
		Detail:       req.Detail,
		Location:     req.Location,
		Status:       status,
		PasswordHash: string(hash),
		Fee:          req.Fee,
	}

	staff = append(staff, member)
	if err := u.rosterRepo.SaveAll(ctx, staff); err != nil {
		u.log.Errorf("Failed to save roster: %+v", err)
		return nil, err
	}

	u.log.Infof("Added %s %s (%s) to roster", role, member.Name, member.ID)
	return converter.StaffToResponse(&member), nil
}

// UpdateStaff rewrites a roster entry in place. The id never changes; the
// password hash is replaced only when a new password is supplied.
func (u *rosterUsecase) UpdateStaff(ctx context.Context, staffID string, req *dto.StaffRequest) (*dto.StaffResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	role := entity.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	staff, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	var updated *entity.StaffMember
	for i := range staff {
		if staff[i].ID == staffID {
			staff[i].Name = req.Name
			staff[i].Role = role
			staff[i].Detail = req.Detail
			staff[i].Location = req.Location
			if req.Status != "" {
				staff[i].Status = req.Status
			}
			staff[i].Fee = req.Fee
			if req.Password != "" {
				hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
				if err != nil {
					return nil, fmt.Errorf("hash password: %w", err)
				}
				staff[i].PasswordHash = string(hash)
			}
			updated = &staff[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrStaffNotFound
	}

	if err := u.rosterRepo.SaveAll(ctx, staff); err != nil {
		u.log.Errorf("Failed to save roster: %+v", err)
		return nil, err
	}

	u.log.Infof("Updated roster entry %s", staffID)
	return converter.StaffToResponse(updated), nil
}

// RemoveStaff deletes a roster entry. Visits already queued against a removed
// doctor keep their doctor id; the board simply stops listing them.
func (u *rosterUsecase) RemoveStaff(ctx context.Context, staffID string) error {
	staff, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	kept := staff[:0]
	for _, s := range staff {
		if s.ID != staffID {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(staff) {
		return ErrStaffNotFound
	}

	if err := u.rosterRepo.SaveAll(ctx, kept); err != nil {
		u.log.Errorf("Failed to save roster: %+v", err)
		return err
	}

	u.log.Infof("Removed %s from roster", staffID)
	return nil
}

// Doctors lists only the Doctor entries, for the check-in form's dropdown.
func (u *rosterUsecase) Doctors(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := u.rosterRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	var doctors []entity.StaffMember
	for _, s := range staff {
		if s.IsDoctor() {
			doctors = append(doctors, s)
		}
	}
	return converter.StaffToResponses(doctors), nil
}

// generateStaffID mints role-prefix + 3 random digits, retrying until the id
// is unused on the roster.
func generateStaffID(role entity.Role, staff []entity.StaffMember) string {
	for {
		id := fmt.Sprintf("%s%03d", role.IDPrefix(), rand.Intn(1000))
		if !rosterHasID(staff, id) {
			return id
		}
	}
}

func rosterHasID(staff []entity.StaffMember, id string) bool {
	for i := range staff {
		if staff[i].ID == id {
			return true
		}
	}
	return false
}

func staffMatches(s *entity.StaffMember, needle string) bool {
	return strings.Contains(strings.ToLower(s.Name), needle) ||
		strings.Contains(strings.ToLower(s.ID), needle) ||
		strings.Contains(strings.ToLower(string(s.Role)), needle) ||
		strings.Contains(strings.ToLower(s.Detail), needle)
}
