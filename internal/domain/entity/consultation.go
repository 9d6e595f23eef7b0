package entity

import (
	"time"
)

// Prescription is the medicine sub-document embedded in a consultation record.
type Prescription struct {
	MedicineName string `json:"medicine_name,omitempty"`
	Dose         string `json:"dose,omitempty"`
	Duration     string `json:"duration,omitempty"`
	DosageText   string `json:"dosage_text,omitempty"`
}

// ConsultationRecord is the point-in-time artifact of a completed
// consultation. Patient fields are copied from the visit, not referenced.
// Symptoms and Diagnosis are write-once: set at first completion and preserved
// across every later edit.
type ConsultationRecord struct {
	ConsultationID    string       `json:"consultation_id"`
	VisitID           string       `json:"visit_id"`
	PatientToken      string       `json:"patient_token"`
	PatientName       string       `json:"patient_name"`
	PatientAge        int          `json:"patient_age"`
	PatientBloodGroup string       `json:"patient_blood_group,omitempty"`
	PatientContact    string       `json:"patient_contact,omitempty"`
	DoctorID          string       `json:"doctor_id"`
	DoctorName        string       `json:"doctor_name"`
	ConsultationDate  time.Time    `json:"consultation_date"`
	Symptoms          string       `json:"symptoms"`
	Diagnosis         string       `json:"diagnosis"`
	Weight            string       `json:"weight,omitempty"`
	Height            string       `json:"height,omitempty"`
	InternalNotes     string       `json:"internal_notes,omitempty"`
	Prescription      Prescription `json:"prescription"`
	LabTest           string       `json:"lab_test,omitempty"`
}

// ApplyRevision overwrites the mutable clinical fields from rev. Identity,
// patient snapshot, symptoms and diagnosis keep their original values.
func (c *ConsultationRecord) ApplyRevision(rev ConsultationRecord) {
	c.Weight = rev.Weight
	c.Height = rev.Height
	c.InternalNotes = rev.InternalNotes
	c.Prescription = rev.Prescription
	c.LabTest = rev.LabTest
	c.ConsultationDate = rev.ConsultationDate
}
