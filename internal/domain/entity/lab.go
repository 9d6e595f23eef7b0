package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TestOrder is one ordered test with its cost frozen at request time. Later
// catalog changes never affect an already issued request.
type TestOrder struct {
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// LabRequest is an open entry of the lab sub-ledger. Collection details and
// results stay empty until a technician fills them in; completion removes the
// request and emits a LabReport.
type LabRequest struct {
	RequestID      string      `json:"request_id"`
	PatientID      string      `json:"patient_id"`
	PatientName    string      `json:"patient_name"`
	PatientAge     int         `json:"patient_age"`
	DoctorID       string      `json:"doctor_id"`
	DoctorName     string      `json:"doctor_name"`
	Tests          []TestOrder `json:"tests"`
	CollectionDate string      `json:"collection_date,omitempty"`
	CollectionTime string      `json:"collection_time,omitempty"`
	ResultsNotes   string      `json:"results_notes,omitempty"`
	RequestedAt    time.Time   `json:"requested_at"`
}

// TotalFee sums the per-test costs captured at request time.
func (r *LabRequest) TotalFee() decimal.Decimal {
	total := decimal.Zero
	for _, t := range r.Tests {
		total = total.Add(t.Cost)
	}
	return total
}

// LabReport is the doctor-addressed artifact emitted when a lab request
// completes. The doctor confirms and deletes it from their inbox.
type LabReport struct {
	ReportID       string      `json:"report_id"`
	PatientID      string      `json:"patient_id"`
	PatientName    string      `json:"patient_name"`
	DoctorID       string      `json:"doctor_id"`
	DoctorName     string      `json:"doctor_name"`
	TechnicianName string      `json:"technician_name"`
	TestDetails    []TestOrder `json:"test_details"`
	TotalFee       decimal.Decimal `json:"total_fee"`
	CollectionDate string      `json:"collection_date"`
	CollectionTime string      `json:"collection_time"`
	ResultsNotes   string      `json:"results_notes"`
	CompletedAt    time.Time   `json:"completed_at"`
}

// AgeBand groups patients for normal-range display.
type AgeBand string

const (
	AgeBandChild    AgeBand = "Child"
	AgeBandTeenager AgeBand = "Teenager"
	AgeBandAdult    AgeBand = "Adult"
)

// AgeBandFor classifies a patient age: child up to 12, teenager 13-17,
// adult otherwise.
func AgeBandFor(age int) AgeBand {
	switch {
	case age <= 12:
		return AgeBandChild
	case age <= 17:
		return AgeBandTeenager
	default:
		return AgeBandAdult
	}
}

// RangeBand maps the band onto the reference-range table; teenagers read the
// adult ranges.
func (b AgeBand) RangeBand() AgeBand {
	if b == AgeBandChild {
		return AgeBandChild
	}
	return AgeBandAdult
}
