package entity

import (
	"github.com/shopspring/decimal"
)

// StaffStatus values shown on the roster board.
const (
	StaffStatusAvailable = "Available"
	StaffStatusBusy      = "Busy"
	StaffStatusOnLeave   = "On Leave"
)

// StaffMember is one entry of the hospital staff roster. Detail carries the
// role-specific attribute: department/qualification for doctors, specialty for
// pharmacists and lab technicians, shift for receptionists.
type StaffMember struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Role         Role            `json:"role"`
	Detail       string          `json:"detail,omitempty"`
	Location     string          `json:"location,omitempty"`
	Status       string          `json:"status"`
	PasswordHash string          `json:"password_hash,omitempty"`
	Fee          decimal.Decimal `json:"fee,omitempty"`
}

// IsDoctor reports whether the staff member holds the Doctor role.
func (s *StaffMember) IsDoctor() bool {
	return s.Role == RoleDoctor
}

// defaultConsultationFee is charged when a doctor has no fee on record.
var defaultConsultationFee = decimal.RequireFromString("50.00")

// ConsultationFee returns the doctor's fee, falling back to the default for
// roster entries created without one.
func (s *StaffMember) ConsultationFee() decimal.Decimal {
	if s.Fee.IsPositive() {
		return s.Fee
	}
	return defaultConsultationFee
}
