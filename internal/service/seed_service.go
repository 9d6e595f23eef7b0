package service

import (
	"context"
	"fmt"

	"go-clinic-workflow/internal/domain/entity"
	"go-clinic-workflow/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Seeder populates the roster and the pharmacy directory on first start, so a
// fresh deployment has doctors to check patients in against and medicines to
// dispense. Non-empty collections are left untouched.
type Seeder struct {
	log        *logrus.Logger
	rosterRepo repository.RosterRepository
	stockRepo  repository.StockRepository
}

func NewSeeder(log *logrus.Logger, rosterRepo repository.RosterRepository, stockRepo repository.StockRepository) *Seeder {
	return &Seeder{log: log, rosterRepo: rosterRepo, stockRepo: stockRepo}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedRoster(ctx); err != nil {
		return err
	}
	return s.seedStock(ctx)
}

func (s *Seeder) seedRoster(ctx context.Context) error {
	staff, err := s.rosterRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	if len(staff) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	defaults := []entity.StaffMember{
		{ID: "ADMIN001", Name: "System Admin", Role: entity.RoleAdmin, Status: entity.StaffStatusAvailable},
		{ID: "DOCT001", Name: "Dr. Sarah Mitchell", Role: entity.RoleDoctor, Detail: "General Medicine", Location: "Room 101", Status: entity.StaffStatusAvailable, Fee: decimal.RequireFromString("50.00")},
		{ID: "DOCT002", Name: "Dr. James Chen", Role: entity.RoleDoctor, Detail: "Cardiology", Location: "Room 102", Status: entity.StaffStatusAvailable, Fee: decimal.RequireFromString("75.00")},
		{ID: "PHARM001", Name: "Priya Sharma", Role: entity.RolePharmacist, Detail: "Dispensary", Location: "Pharmacy Counter", Status: entity.StaffStatusAvailable},
		{ID: "LAB001", Name: "Marcus Webb", Role: entity.RoleLabTechnician, Detail: "Pathology", Location: "Lab Wing", Status: entity.StaffStatusAvailable},
		{ID: "RECEP001", Name: "Anna Kowalski", Role: entity.RoleReceptionist, Detail: "Morning Shift", Location: "Front Desk", Status: entity.StaffStatusAvailable},
	}
	for i := range defaults {
		defaults[i].PasswordHash = string(hash)
	}

	if err := s.rosterRepo.SaveAll(ctx, defaults); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	s.log.Infof("Seeded roster with %d default staff members", len(defaults))
	return nil
}

func (s *Seeder) seedStock(ctx context.Context) error {
	items, err := s.stockRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load pharmacy stock: %w", err)
	}
	if len(items) > 0 {
		return nil
	}

	defaults := []entity.StockItem{
		{Name: "Paracetamol", Price: decimal.RequireFromString("2.50"), Quantity: decimal.NewFromInt(100)},
		{Name: "Amoxicillin", Price: decimal.RequireFromString("5.00"), Quantity: decimal.NewFromInt(60)},
		{Name: "Ibuprofen", Price: decimal.RequireFromString("3.25"), Quantity: decimal.NewFromInt(80)},
		{Name: "Cetirizine", Price: decimal.RequireFromString("1.75"), Quantity: decimal.NewFromInt(50)},
		{Name: "Omeprazole", Price: decimal.RequireFromString("4.50"), Quantity: decimal.NewFromInt(40)},
	}

	if err := s.stockRepo.SaveAll(ctx, defaults); err != nil {
		return fmt.Errorf("save pharmacy stock: %w", err)
	}
	s.log.Infof("Seeded pharmacy stock with %d default medicines", len(defaults))
	return nil
}
