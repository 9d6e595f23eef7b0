package converter

import (
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to its response DTO.
func VisitToResponse(v *entity.Visit) *dto.VisitResponse {
	if v == nil {
		return nil
	}

	return &dto.VisitResponse{
		ID:          v.ID,
		Token:       v.Token,
		Name:        v.Name,
		Age:         v.Age,
		Address:     v.Address,
		BloodGroup:  v.BloodGroup,
		Contact:     v.Contact,
		DoctorID:    v.DoctorID,
		Status:      string(v.Status),
		CheckInTime: v.CheckInTime,
	}
}

func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, 0, len(visits))
	for i := range visits {
		responses = append(responses, *VisitToResponse(&visits[i]))
	}
	return responses
}
