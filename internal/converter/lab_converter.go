package converter

import (
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
)

func testOrdersToResponses(tests []entity.TestOrder, band entity.AgeBand) []dto.TestOrderResponse {
	responses := make([]dto.TestOrderResponse, 0, len(tests))
	for _, t := range tests {
		responses = append(responses, dto.TestOrderResponse{
			Name:        t.Name,
			Cost:        t.Cost.Round(2),
			NormalRange: entity.NormalRange(t.Name, band),
		})
	}
	return responses
}

func LabRequestToResponse(r *entity.LabRequest) *dto.LabRequestResponse {
	if r == nil {
		return nil
	}

	band := entity.AgeBandFor(r.PatientAge)
	return &dto.LabRequestResponse{
		RequestID:      r.RequestID,
		PatientID:      r.PatientID,
		PatientName:    r.PatientName,
		PatientAge:     r.PatientAge,
		AgeBand:        string(band),
		DoctorID:       r.DoctorID,
		DoctorName:     r.DoctorName,
		Tests:          testOrdersToResponses(r.Tests, band),
		TotalFee:       r.TotalFee().Round(2),
		CollectionDate: r.CollectionDate,
		CollectionTime: r.CollectionTime,
		ResultsNotes:   r.ResultsNotes,
		RequestedAt:    r.RequestedAt,
	}
}

func LabRequestsToResponses(requests []entity.LabRequest) []dto.LabRequestResponse {
	responses := make([]dto.LabRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *LabRequestToResponse(&requests[i]))
	}
	return responses
}

// LabReportToResponse renders a report for the doctor's inbox. Reports carry
// no age snapshot, so the advisory ranges shown are the adult ones.
func LabReportToResponse(r *entity.LabReport) *dto.LabReportResponse {
	if r == nil {
		return nil
	}

	return &dto.LabReportResponse{
		ReportID:       r.ReportID,
		PatientID:      r.PatientID,
		PatientName:    r.PatientName,
		DoctorID:       r.DoctorID,
		DoctorName:     r.DoctorName,
		TechnicianName: r.TechnicianName,
		TestDetails:    testOrdersToResponses(r.TestDetails, entity.AgeBandAdult),
		TotalFee:       r.TotalFee.Round(2),
		CollectionDate: r.CollectionDate,
		CollectionTime: r.CollectionTime,
		ResultsNotes:   r.ResultsNotes,
		CompletedAt:    r.CompletedAt,
	}
}

func LabReportsToResponses(reports []entity.LabReport) []dto.LabReportResponse {
	responses := make([]dto.LabReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *LabReportToResponse(&reports[i]))
	}
	return responses
}
