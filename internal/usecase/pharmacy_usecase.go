package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-clinic-workflow/internal/converter"
	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/pkg/billing"
	"go-clinic-workflow/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPrescriptionNotFound  = errors.New("prescription not found")
	ErrPrescriptionProcessed = errors.New("prescription already processed")
	ErrMedicineNotInStock    = errors.New("medicine not in stock directory")
	ErrInvalidDosage         = errors.New("dose and duration must be numeric")
	ErrInsufficientStock     = errors.New("insufficient stock for prescription")
	ErrStockItemNotFound     = errors.New("stock item not found")
)

type PharmacyUsecase interface {
	Stock(ctx context.Context, search string) (*dto.StockListResponse, error)
	UpsertStock(ctx context.Context, req *dto.UpsertStockRequest) (*dto.StockItemResponse, error)
	DeleteStock(ctx context.Context, name string) error
	SuggestStock(ctx context.Context, prefix string) ([]string, error)
	PendingPrescriptions(ctx context.Context, patientID string) ([]dto.PrescriptionResponse, error)
	PreviewBilling(ctx context.Context, prescriptionID string) (*dto.InvoiceResponse, error)
	ProcessPrescription(ctx context.Context, prescriptionID, pharmacistID string) (*dto.InvoiceResponse, error)
}

type pharmacyUsecase struct {
	log              *logrus.Logger
	validate         *validator.CustomValidator
	prescriptionRepo repository.PrescriptionRepository
	stockRepo        repository.StockRepository
	billRepo         repository.BillRepository
}

func NewPharmacyUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	prescriptionRepo repository.PrescriptionRepository,
	stockRepo repository.StockRepository,
	billRepo repository.BillRepository,
) PharmacyUsecase {
	return &pharmacyUsecase{
		log:              log,
		validate:         validate,
		prescriptionRepo: prescriptionRepo,
		stockRepo:        stockRepo,
		billRepo:         billRepo,
	}
}

// Stock lists the medicine directory, optionally filtered by a
// case-insensitive name substring.
func (u *pharmacyUsecase) Stock(ctx context.Context, search string) (*dto.StockListResponse, error) {
	items, err := u.stockRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pharmacy stock: %w", err)
	}

	needle := strings.ToLower(search)
	var matched []entity.StockItem
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		matched = append(matched, item)
	}

	return &dto.StockListResponse{
		Items: converter.StockItemsToResponses(matched),
		Total: len(matched),
	}, nil
}

// UpsertStock restocks an existing medicine (quantity adds, price replaces) or
// creates a new directory entry.
func (u *pharmacyUsecase) UpsertStock(ctx context.Context, req *dto.UpsertStockRequest) (*dto.StockItemResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	items, err := u.stockRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pharmacy stock: %w", err)
	}

	var result *entity.StockItem
	for i := range items {
		if items[i].Matches(req.Name) {
			items[i].Quantity = items[i].Quantity.Add(req.Quantity)
			items[i].Price = req.Price
			result = &items[i]
			break
		}
	}
	if result == nil {
		items = append(items, entity.StockItem{
			Name:     req.Name,
			Price:    req.Price,
			Quantity: req.Quantity,
		})
		result = &items[len(items)-1]
	}

	if err := u.stockRepo.SaveAll(ctx, items); err != nil {
		u.log.Errorf("Failed to save pharmacy stock: %+v", err)
		return nil, err
	}

	u.log.Infof("Upserted stock item %s (qty=%s)", result.Name, result.Quantity)
	return converter.StockItemToResponse(result), nil
}

// DeleteStock removes a medicine from the directory.
func (u *pharmacyUsecase) DeleteStock(ctx context.Context, name string) error {
	items, err := u.stockRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load pharmacy stock: %w", err)
	}

	kept := items[:0]
	for _, item := range items {
		if !item.Matches(name) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return ErrStockItemNotFound
	}

	if err := u.stockRepo.SaveAll(ctx, kept); err != nil {
		u.log.Errorf("Failed to save pharmacy stock: %+v", err)
		return err
	}

	u.log.Infof("Deleted stock item %s", name)
	return nil
}

// SuggestStock returns medicine names starting with the typed prefix, for the
// restock form's autocomplete.
func (u *pharmacyUsecase) SuggestStock(ctx context.Context, prefix string) ([]string, error) {
	if prefix == "" {
		return nil, nil
	}

	items, err := u.stockRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pharmacy stock: %w", err)
	}

	needle := strings.ToLower(prefix)
	var names []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Name), needle) {
			names = append(names, item.Name)
		}
	}
	return names, nil
}

// PendingPrescriptions lists the pharmacy work queue, optionally filtered by
// a case-insensitive patient-id substring.
func (u *pharmacyUsecase) PendingPrescriptions(ctx context.Context, patientID string) ([]dto.PrescriptionResponse, error) {
	orders, err := u.prescriptionRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prescriptions: %w", err)
	}

	needle := strings.ToLower(patientID)
	var pending []entity.PrescriptionOrder
	for _, o := range orders {
		if !o.IsPending() {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(o.PatientID), needle) {
			continue
		}
		pending = append(pending, o)
	}
	return converter.PrescriptionsToResponses(pending), nil
}

// PreviewBilling computes the invoice for a pending prescription without
// dispensing: stock is untouched and the prescription stays Pending. The same
// checks as ProcessPrescription apply, so a preview failing means dispensing
// would fail too.
func (u *pharmacyUsecase) PreviewBilling(ctx context.Context, prescriptionID string) (*dto.InvoiceResponse, error) {
	orders, err := u.prescriptionRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prescriptions: %w", err)
	}
	order, err := findPending(orders, prescriptionID)
	if err != nil {
		return nil, err
	}

	items, err := u.stockRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pharmacy stock: %w", err)
	}

	invoice, _, err := u.buildInvoice(order, items, order.DoctorName)
	if err != nil {
		return nil, err
	}
	return converter.InvoiceToResponse(invoice), nil
}

// ProcessPrescription dispenses a pending prescription: checks stock covers
// dose x duration, deducts it, marks the prescription Processed, posts a
// pending bill, and returns the invoice.
func (u *pharmacyUsecase) ProcessPrescription(ctx context.Context, prescriptionID, pharmacistID string) (*dto.InvoiceResponse, error) {
	orders, err := u.prescriptionRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prescriptions: %w", err)
	}
	order, err := findPending(orders, prescriptionID)
	if err != nil {
		return nil, err
	}

	items, err := u.stockRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pharmacy stock: %w", err)
	}

	invoice, stockIdx, err := u.buildInvoice(order, items, pharmacistID)
	if err != nil {
		return nil, err
	}

	// All checks passed; the writes below happen in sequence with no rollback.
	qty, _ := order.DispenseQuantity()
	items[stockIdx].Deduct(qty)
	if err := u.stockRepo.SaveAll(ctx, items); err != nil {
		u.log.Errorf("Failed to save pharmacy stock: %+v", err)
		return nil, err
	}

	order.Process()
	if err := u.prescriptionRepo.SaveAll(ctx, orders); err != nil {
		u.log.Errorf("Failed to save prescriptions: %+v", err)
		return nil, err
	}

	bill := entity.PatientBill{
		BillID:    uuid.NewString(),
		PatientID: order.PatientID,
		Item:      "Pharmacy: " + order.MedicineName,
		Provider:  pharmacistID,
		Amount:    invoice.Totals.GrandTotal,
		Date:      time.Now().Format("2006-01-02"),
		Status:    entity.BillStatusPending,
	}
	bills, err := u.billRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load patient bills: %w", err)
	}
	bills = append(bills, bill)
	if err := u.billRepo.SaveAll(ctx, bills); err != nil {
		u.log.Errorf("Failed to save patient bills: %+v", err)
		return nil, err
	}

	u.log.Infof("Processed prescription %s for patient %s (qty=%s)", prescriptionID, order.PatientID, qty)
	return converter.InvoiceToResponse(invoice), nil
}

// buildInvoice runs the dispensing checks and prices the prescription against
// current stock. It returns the stock index so the caller can deduct from the
// same item it priced.
func (u *pharmacyUsecase) buildInvoice(order *entity.PrescriptionOrder, items []entity.StockItem, provider string) (*billing.Invoice, int, error) {
	stockIdx := -1
	for i := range items {
		if items[i].Matches(order.MedicineName) {
			stockIdx = i
			break
		}
	}
	if stockIdx == -1 {
		return nil, -1, ErrMedicineNotInStock
	}

	qty, err := order.DispenseQuantity()
	if err != nil {
		u.log.Warnf("Prescription %s has non-numeric dosage: %+v", order.PrescriptionID, err)
		return nil, -1, ErrInvalidDosage
	}
	if items[stockIdx].Quantity.LessThan(qty) {
		return nil, -1, ErrInsufficientStock
	}

	price := items[stockIdx].Price
	amount := price.Mul(qty)
	totals := billing.Compute(amount)

	return &billing.Invoice{
		Number:      fmt.Sprintf("PH-%s", order.PrescriptionID[:8]),
		PatientID:   order.PatientID,
		PatientName: order.PatientName,
		Token:       order.Token,
		Provider:    provider,
		Lines: []billing.Line{
			{
				Description: order.MedicineName,
				Quantity:    qty,
				UnitPrice:   price,
				Amount:      amount,
			},
		},
		Totals:   totals,
		IssuedAt: time.Now(),
	}, stockIdx, nil
}

func findPending(orders []entity.PrescriptionOrder, prescriptionID string) (*entity.PrescriptionOrder, error) {
	for i := range orders {
		if orders[i].PrescriptionID == prescriptionID {
			if !orders[i].IsPending() {
				return nil, ErrPrescriptionProcessed
			}
			return &orders[i], nil
		}
	}
	return nil, ErrPrescriptionNotFound
}
