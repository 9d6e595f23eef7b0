package converter

import (
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
)

// StaffToResponse converts a roster entry for display. The password hash
// never leaves the entity.
func StaffToResponse(s *entity.StaffMember) *dto.StaffResponse {
	if s == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:       s.ID,
		Name:     s.Name,
		Role:     string(s.Role),
		Detail:   s.Detail,
		Location: s.Location,
		Status:   s.Status,
		Fee:      s.Fee.Round(2),
	}
}

func StaffToResponses(staff []entity.StaffMember) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		responses = append(responses, *StaffToResponse(&staff[i]))
	}
	return responses
}

func StockItemToResponse(item *entity.StockItem) *dto.StockItemResponse {
	if item == nil {
		return nil
	}

	return &dto.StockItemResponse{
		Name:     item.Name,
		Price:    item.Price.Round(2),
		Quantity: item.Quantity,
	}
}

func StockItemsToResponses(items []entity.StockItem) []dto.StockItemResponse {
	responses := make([]dto.StockItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *StockItemToResponse(&items[i]))
	}
	return responses
}

func BillToResponse(b *entity.PatientBill) *dto.BillResponse {
	if b == nil {
		return nil
	}

	return &dto.BillResponse{
		BillID:    b.BillID,
		PatientID: b.PatientID,
		Item:      b.Item,
		Provider:  b.Provider,
		Amount:    b.Amount.Round(2),
		Date:      b.Date,
		Status:    string(b.Status),
	}
}

func BillsToResponses(bills []entity.PatientBill) []dto.BillResponse {
	responses := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		responses = append(responses, *BillToResponse(&bills[i]))
	}
	return responses
}
