package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"go-clinic-workflow/internal/delivery/dto"
	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/internal/domain/repository"
	"go-clinic-workflow/internal/infrastructure/store"
	repoimpl "go-clinic-workflow/internal/repository"
	"go-clinic-workflow/internal/service"
	"go-clinic-workflow/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testEnv wires every usecase over one in-memory store, the same way
// bootstrap does for a real deployment.
type testEnv struct {
	t *testing.T

	visitRepo        repository.VisitRepository
	historyRepo      repository.PatientHistoryRepository
	consultationRepo repository.ConsultationRepository
	labRequestRepo   repository.LabRequestRepository
	labReportRepo    repository.LabReportRepository
	prescriptionRepo repository.PrescriptionRepository
	stockRepo        repository.StockRepository
	rosterRepo       repository.RosterRepository
	billRepo         repository.BillRepository

	reception     ReceptionUsecase
	doctor        DoctorUsecase
	lab           LabUsecase
	pharmacy      PharmacyUsecase
	roster        RosterUsecase
	billingReport BillingReportUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	customValidator := validator.NewValidator()

	s := store.NewMemoryStore()
	env := &testEnv{
		t:                t,
		visitRepo:        repoimpl.NewVisitRepository(s),
		historyRepo:      repoimpl.NewPatientHistoryRepository(s),
		consultationRepo: repoimpl.NewConsultationRepository(s),
		labRequestRepo:   repoimpl.NewLabRequestRepository(s),
		labReportRepo:    repoimpl.NewLabReportRepository(s),
		prescriptionRepo: repoimpl.NewPrescriptionRepository(s),
		stockRepo:        repoimpl.NewStockRepository(s),
		rosterRepo:       repoimpl.NewRosterRepository(s),
		billRepo:         repoimpl.NewBillRepository(s),
	}

	tokens := service.NewTokenAllocator(log, env.visitRepo)

	env.reception = NewReceptionUsecase(log, customValidator, env.visitRepo, env.historyRepo, env.rosterRepo, tokens)
	env.doctor = NewDoctorUsecase(log, customValidator, env.visitRepo, env.consultationRepo, env.labRequestRepo, env.labReportRepo, env.prescriptionRepo, env.rosterRepo)
	env.lab = NewLabUsecase(log, customValidator, env.labRequestRepo, env.labReportRepo, env.billRepo)
	env.pharmacy = NewPharmacyUsecase(log, customValidator, env.prescriptionRepo, env.stockRepo, env.billRepo)
	env.roster = NewRosterUsecase(log, customValidator, env.rosterRepo)
	env.billingReport = NewBillingReportUsecase(log, env.billRepo)

	return env
}

func (e *testEnv) seedDoctor(id, name string) {
	e.t.Helper()
	staff, err := e.rosterRepo.LoadAll(context.Background())
	require.NoError(e.t, err)
	staff = append(staff, entity.StaffMember{
		ID:       id,
		Name:     name,
		Role:     entity.RoleDoctor,
		Location: "Room 101",
		Status:   entity.StaffStatusAvailable,
		Fee:      decimal.RequireFromString("50.00"),
	})
	require.NoError(e.t, e.rosterRepo.SaveAll(context.Background(), staff))
}

func (e *testEnv) seedStock(name string, price string, qty int64) {
	e.t.Helper()
	items, err := e.stockRepo.LoadAll(context.Background())
	require.NoError(e.t, err)
	items = append(items, entity.StockItem{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: decimal.NewFromInt(qty),
	})
	require.NoError(e.t, e.stockRepo.SaveAll(context.Background(), items))
}

// checkIn registers a patient and returns the new visit id. Visit ids come
// from the millisecond clock, so the helper spaces check-ins out to keep ids
// unique within a test.
func (e *testEnv) checkIn(name, contact, doctorID string) string {
	e.t.Helper()
	resp, err := e.reception.CheckIn(context.Background(), &dto.CheckInRequest{
		Name:     name,
		Age:      30,
		Contact:  contact,
		DoctorID: doctorID,
	})
	require.NoError(e.t, err)
	time.Sleep(2 * time.Millisecond)
	return resp.Visit.ID
}

// claim moves the doctor's next patient into consultation.
func (e *testEnv) claim(doctorID string) string {
	e.t.Helper()
	visit, err := e.doctor.ClaimNext(context.Background(), doctorID)
	require.NoError(e.t, err)
	return visit.ID
}

func (e *testEnv) stockQuantity(name string) decimal.Decimal {
	e.t.Helper()
	items, err := e.stockRepo.LoadAll(context.Background())
	require.NoError(e.t, err)
	for _, item := range items {
		if item.Matches(name) {
			return item.Quantity
		}
	}
	e.t.Fatalf("stock item %s not found", name)
	return decimal.Zero
}
