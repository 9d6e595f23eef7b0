package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyRevisionPreservesSymptomsAndDiagnosis(t *testing.T) {
	original := ConsultationRecord{
		ConsultationID: "c-1",
		VisitID:        "P123456",
		PatientName:    "Ravi Kumar",
		Symptoms:       "fever, headache",
		Diagnosis:      "viral infection",
		Weight:         "70",
		LabTest:        "Blood Test",
	}

	record := original
	record.ApplyRevision(ConsultationRecord{
		Symptoms:      "attempted overwrite",
		Diagnosis:     "attempted overwrite",
		Weight:        "72",
		Height:        "175",
		InternalNotes: "follow up in a week",
		Prescription:  Prescription{MedicineName: "Paracetamol", Dose: "2", Duration: "3"},
		ConsultationDate: time.Now(),
	})

	assert.Equal(t, original.Symptoms, record.Symptoms)
	assert.Equal(t, original.Diagnosis, record.Diagnosis)
	assert.Equal(t, original.ConsultationID, record.ConsultationID)
	assert.Equal(t, original.VisitID, record.VisitID)
	assert.Equal(t, original.PatientName, record.PatientName)

	assert.Equal(t, "72", record.Weight)
	assert.Equal(t, "175", record.Height)
	assert.Equal(t, "follow up in a week", record.InternalNotes)
	assert.Equal(t, "Paracetamol", record.Prescription.MedicineName)
	assert.Empty(t, record.LabTest)
}
