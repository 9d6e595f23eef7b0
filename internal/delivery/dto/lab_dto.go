package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type OrderLabTestRequest struct {
	VisitID  string `json:"visit_id" validate:"required"`
	TestName string `json:"test_name" validate:"required"`
}

// LabResultsRequest is shared by the update-in-place and complete operations;
// both enforce the same minimum detail on results.
type LabResultsRequest struct {
	CollectionDate string `json:"collection_date" validate:"required"`
	CollectionTime string `json:"collection_time" validate:"required"`
	ResultsNotes   string `json:"results_notes" validate:"required,min=10"`
}

// Response DTOs

type TestOrderResponse struct {
	Name        string          `json:"name"`
	Cost        decimal.Decimal `json:"cost"`
	NormalRange string          `json:"normal_range"`
}

type LabRequestResponse struct {
	RequestID      string              `json:"request_id"`
	PatientID      string              `json:"patient_id"`
	PatientName    string              `json:"patient_name"`
	PatientAge     int                 `json:"patient_age"`
	AgeBand        string              `json:"age_band"`
	DoctorID       string              `json:"doctor_id"`
	DoctorName     string              `json:"doctor_name"`
	Tests          []TestOrderResponse `json:"tests"`
	TotalFee       decimal.Decimal     `json:"total_fee"`
	CollectionDate string              `json:"collection_date,omitempty"`
	CollectionTime string              `json:"collection_time,omitempty"`
	ResultsNotes   string              `json:"results_notes,omitempty"`
	RequestedAt    time.Time           `json:"requested_at"`
}

type LabReportResponse struct {
	ReportID       string              `json:"report_id"`
	PatientID      string              `json:"patient_id"`
	PatientName    string              `json:"patient_name"`
	DoctorID       string              `json:"doctor_id"`
	DoctorName     string              `json:"doctor_name"`
	TechnicianName string              `json:"technician_name"`
	TestDetails    []TestOrderResponse `json:"test_details"`
	TotalFee       decimal.Decimal     `json:"total_fee"`
	CollectionDate string              `json:"collection_date"`
	CollectionTime string              `json:"collection_time"`
	ResultsNotes   string              `json:"results_notes"`
	CompletedAt    time.Time           `json:"completed_at"`
}
