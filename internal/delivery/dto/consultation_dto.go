package dto

import (
	"time"
)

// Request DTOs

type PrescriptionFields struct {
	MedicineName string `json:"medicine_name"`
	Dose         string `json:"dose"`
	Duration     string `json:"duration"`
	DosageText   string `json:"dosage_text"`
}

type CompleteConsultationRequest struct {
	VisitID       string             `json:"visit_id" validate:"required"`
	Symptoms      string             `json:"symptoms"`
	Diagnosis     string             `json:"diagnosis" validate:"required"`
	Weight        string             `json:"weight"`
	Height        string             `json:"height"`
	InternalNotes string             `json:"internal_notes"`
	Prescription  PrescriptionFields `json:"prescription"`
	LabTest       string             `json:"lab_test"`
}

// UpdateConsultationRequest carries only the fields an edit pass may change.
// Symptoms and diagnosis are not here: they are write-once.
type UpdateConsultationRequest struct {
	Weight        string             `json:"weight"`
	Height        string             `json:"height"`
	InternalNotes string             `json:"internal_notes"`
	Prescription  PrescriptionFields `json:"prescription"`
	LabTest       string             `json:"lab_test"`
}

// Response DTOs

type ConsultationResponse struct {
	ConsultationID    string             `json:"consultation_id"`
	VisitID           string             `json:"visit_id"`
	PatientToken      string             `json:"patient_token"`
	PatientName       string             `json:"patient_name"`
	PatientAge        int                `json:"patient_age"`
	PatientBloodGroup string             `json:"patient_blood_group,omitempty"`
	PatientContact    string             `json:"patient_contact,omitempty"`
	DoctorID          string             `json:"doctor_id"`
	DoctorName        string             `json:"doctor_name"`
	ConsultationDate  time.Time          `json:"consultation_date"`
	Symptoms          string             `json:"symptoms"`
	Diagnosis         string             `json:"diagnosis"`
	Weight            string             `json:"weight,omitempty"`
	Height            string             `json:"height,omitempty"`
	InternalNotes     string             `json:"internal_notes,omitempty"`
	Prescription      PrescriptionFields `json:"prescription"`
	LabTest           string             `json:"lab_test,omitempty"`
}
