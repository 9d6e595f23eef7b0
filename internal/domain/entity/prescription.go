package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PrescriptionStatus represents the pharmacy sub-ledger state.
type PrescriptionStatus string

const (
	PrescriptionStatusPending   PrescriptionStatus = "Pending"
	PrescriptionStatusProcessed PrescriptionStatus = "Processed"
)

// PrescriptionOrder is a doctor-issued entry of the pharmacy sub-ledger.
// Processed is terminal.
type PrescriptionOrder struct {
	PrescriptionID string             `json:"prescription_id"`
	PatientID      string             `json:"patient_id"`
	PatientName    string             `json:"patient_name"`
	DoctorID       string             `json:"doctor_id"`
	DoctorName     string             `json:"doctor_name"`
	Token          string             `json:"token"`
	MedicineName   string             `json:"medicine_name"`
	Dose           string             `json:"dose"`
	Duration       string             `json:"duration"`
	DosageText     string             `json:"dosage_text,omitempty"`
	Status         PrescriptionStatus `json:"status"`
	IssuedAt       time.Time          `json:"issued_at"`
}

// IsPending checks if the prescription is still waiting at the pharmacy.
func (p *PrescriptionOrder) IsPending() bool {
	return p.Status == PrescriptionStatusPending
}

// Process marks the prescription dispensed.
func (p *PrescriptionOrder) Process() {
	p.Status = PrescriptionStatusProcessed
}

// DispenseQuantity computes dose x duration, the unit count to deduct from
// stock. Dose and duration come in as free-text form fields.
func (p *PrescriptionOrder) DispenseQuantity() (decimal.Decimal, error) {
	dose, err := decimal.NewFromString(p.Dose)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid dose %q: %w", p.Dose, err)
	}
	duration, err := decimal.NewFromString(p.Duration)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid duration %q: %w", p.Duration, err)
	}
	return dose.Mul(duration), nil
}
