package converter

import (
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/pkg/billing"
)

func PrescriptionToResponse(p *entity.PrescriptionOrder) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		PrescriptionID: p.PrescriptionID,
		PatientID:      p.PatientID,
		PatientName:    p.PatientName,
		DoctorID:       p.DoctorID,
		DoctorName:     p.DoctorName,
		Token:          p.Token,
		MedicineName:   p.MedicineName,
		Dose:           p.Dose,
		Duration:       p.Duration,
		DosageText:     p.DosageText,
		Status:         string(p.Status),
		IssuedAt:       p.IssuedAt,
	}
}

func PrescriptionsToResponses(orders []entity.PrescriptionOrder) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *PrescriptionToResponse(&orders[i]))
	}
	return responses
}

// InvoiceToResponse renders an invoice for output. This is the single place
// amounts get rounded to two decimal places; the billing package keeps them
// at full precision.
func InvoiceToResponse(inv *billing.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}

	lines := make([]dto.InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, dto.InvoiceLineResponse{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.Round(2),
			Amount:      l.Amount.Round(2),
		})
	}

	return &dto.InvoiceResponse{
		Number:      inv.Number,
		PatientID:   inv.PatientID,
		PatientName: inv.PatientName,
		Token:       inv.Token,
		Provider:    inv.Provider,
		Lines:       lines,
		Subtotal:    inv.Totals.Subtotal.Round(2),
		Tax:         inv.Totals.Tax.Round(2),
		GrandTotal:  inv.Totals.GrandTotal.Round(2),
		IssuedAt:    inv.IssuedAt,
	}
}
