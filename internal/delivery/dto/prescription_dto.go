package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type IssuePrescriptionRequest struct {
	VisitID      string `json:"visit_id" validate:"required"`
	MedicineName string `json:"medicine_name" validate:"required"`
	Dose         string `json:"dose" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	DosageText   string `json:"dosage_text"`
}

// Response DTOs

type PrescriptionResponse struct {
	PrescriptionID string    `json:"prescription_id"`
	PatientID      string    `json:"patient_id"`
	PatientName    string    `json:"patient_name"`
	DoctorID       string    `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name"`
	Token          string    `json:"token"`
	MedicineName   string    `json:"medicine_name"`
	Dose           string    `json:"dose"`
	Duration       string    `json:"duration"`
	DosageText     string    `json:"dosage_text,omitempty"`
	Status         string    `json:"status"`
	IssuedAt       time.Time `json:"issued_at"`
}

type InvoiceLineResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the rendered-for-output invoice: every amount rounded to
// two decimal places here and nowhere earlier.
type InvoiceResponse struct {
	Number      string                `json:"number"`
	PatientID   string                `json:"patient_id"`
	PatientName string                `json:"patient_name"`
	Token       string                `json:"token,omitempty"`
	Provider    string                `json:"provider"`
	Lines       []InvoiceLineResponse `json:"lines"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
	Tax         decimal.Decimal       `json:"tax"`
	GrandTotal  decimal.Decimal       `json:"grand_total"`
	IssuedAt    time.Time             `json:"issued_at"`
}
