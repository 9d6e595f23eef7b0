package converter

import (
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
)

func ConsultationToResponse(c *entity.ConsultationRecord) *dto.ConsultationResponse {
	if c == nil {
		return nil
	}

	return &dto.ConsultationResponse{
		ConsultationID:    c.ConsultationID,
		VisitID:           c.VisitID,
		PatientToken:      c.PatientToken,
		PatientName:       c.PatientName,
		PatientAge:        c.PatientAge,
		PatientBloodGroup: c.PatientBloodGroup,
		PatientContact:    c.PatientContact,
		DoctorID:          c.DoctorID,
		DoctorName:        c.DoctorName,
		ConsultationDate:  c.ConsultationDate,
		Symptoms:          c.Symptoms,
		Diagnosis:         c.Diagnosis,
		Weight:            c.Weight,
		Height:            c.Height,
		InternalNotes:     c.InternalNotes,
		Prescription: dto.PrescriptionFields{
			MedicineName: c.Prescription.MedicineName,
			Dose:         c.Prescription.Dose,
			Duration:     c.Prescription.Duration,
			DosageText:   c.Prescription.DosageText,
		},
		LabTest: c.LabTest,
	}
}

func ConsultationsToResponses(records []entity.ConsultationRecord) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *ConsultationToResponse(&records[i]))
	}
	return responses
}
